package telegram

import "tasknotes-nlp/internal/language"

type replies struct {
	welcome     string
	help        string
	langSet     string
	langCurrent string
	langUnknown string
	failed      string
}

var messages = map[language.Code]replies{
	language.English: {
		welcome: "Welcome! Send me a task the way you would write it, for example:\n" +
			"Call the doctor tomorrow at 3pm high priority #health\n\n" +
			"I will reply with what I understood.",
		help: "Write one task per message. I recognize:\n" +
			"- dates: tomorrow, next friday, due may 3, from monday to friday\n" +
			"- priority and status: urgent, low priority, in progress, done\n" +
			"- #tags, @contexts and +projects\n" +
			"- repeats: every monday, every 2 weeks\n" +
			"- estimates: 1h30m, ~45min\n\n" +
			"/lang <code> switches language (%s).",
		langSet:     "Language set to %s.",
		langCurrent: "Current language: %s. Supported: %s.",
		langUnknown: "Unsupported language %q. Supported: %s.",
		failed:      "Sorry, I could not read that task. Please try again.",
	},
	language.Spanish: {
		welcome: "¡Hola! Envíame una tarea tal como la escribirías, por ejemplo:\n" +
			"Llamar al médico mañana a las 3 de la tarde prioridad alta #salud\n\n" +
			"Te responderé con lo que entendí.",
		help: "Escribe una tarea por mensaje. Reconozco:\n" +
			"- fechas: mañana, el próximo viernes, vence el 3 de mayo, de lunes a viernes\n" +
			"- prioridad y estado: urgente, prioridad baja, en progreso, hecho\n" +
			"- #etiquetas, @contextos y +proyectos\n" +
			"- repeticiones: cada lunes, cada 2 semanas\n" +
			"- estimaciones: 2 horas, ~45min\n\n" +
			"/lang <código> cambia el idioma (%s).",
		langSet:     "Idioma cambiado a %s.",
		langCurrent: "Idioma actual: %s. Disponibles: %s.",
		langUnknown: "Idioma no disponible %q. Disponibles: %s.",
		failed:      "No pude leer esa tarea. Inténtalo de nuevo.",
	},
}
