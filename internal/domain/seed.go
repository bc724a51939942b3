package domain

// SeedIdeas returns the demo dataset written on first run.
// The last record reuses idea_104; IDs are not enforced unique.
func SeedIdeas() []Idea {
	ideas := make([]Idea, len(seedIdeas))
	for i, idea := range seedIdeas {
		idea.Tags = append([]string(nil), idea.Tags...)
		ideas[i] = idea
	}
	return ideas
}

var seedIdeas = []Idea{
	{ID: "idea_101", Title: "Asistente educativo con IA", Tags: []string{"IA", "Educación"}, Author: "María Pérez"},
	{ID: "idea_102", Title: "Sistema solar inteligente IoT", Tags: []string{"Energía", "IoT"}, Author: "Luis Ramos"},
	{ID: "idea_103", Title: "Detector de estrés con IA", Tags: []string{"IA", "Salud"}, Author: "Ana Torres"},
	{ID: "idea_104", Title: "App de reciclaje comunitario", Tags: []string{"Sostenibilidad", "Comunidad"}, Author: "Carlos Vega"},
	{ID: "idea_105", Title: "Sistema de monitoreo agrícola con drones", Tags: []string{"Agricultura", "IoT"}, Author: "Elena García"},
	{ID: "idea_106", Title: "Chatbot legal gratuito", Tags: []string{"IA", "LegalTech"}, Author: "Miguel Ortega"},
	{ID: "idea_107", Title: "Detector de fugas en edificios inteligentes", Tags: []string{"IoT", "Energía"}, Author: "Valeria Núñez"},
	{ID: "idea_108", Title: "Sistema de predicción de tráfico urbano", Tags: []string{"IA", "Transporte"}, Author: "Raúl Méndez"},
	{ID: "idea_109", Title: "Plataforma de intercambio de libros", Tags: []string{"Educación", "Comunidad"}, Author: "Lucía Soto"},
	{ID: "idea_110", Title: "Monitor de salud materna IoT", Tags: []string{"Salud", "IoT"}, Author: "Carmen Silva"},
	{ID: "idea_111", Title: "Sistema de optimización de riego agrícola", Tags: []string{"Agricultura", "Energía", "IoT"}, Author: "Daniel Ruiz"},
	{ID: "idea_112", Title: "App de voluntariado local", Tags: []string{"Comunidad", "Sostenibilidad"}, Author: "Paola Jiménez"},
	{ID: "idea_113", Title: "Asistente de estudio con IA", Tags: []string{"IA", "Educación"}, Author: "David Soto"},
	{ID: "idea_114", Title: "Gestor de gastos personales inteligente", Tags: []string{"Finanzas", "IA"}, Author: "Rocío León"},
	{ID: "idea_115", Title: "Red social para makers e inventores", Tags: []string{"Comunidad", "Innovación"}, Author: "Pedro Alarcón"},
	{ID: "idea_116", Title: "Control de iluminación por voz", Tags: []string{"IoT", "SmartHome"}, Author: "Sofía Ramos"},
	{ID: "idea_117", Title: "Plataforma de trueque digital", Tags: []string{"Blockchain", "Comunidad"}, Author: "Héctor Valdez"},
	{ID: "idea_118", Title: "Detección temprana de incendios forestales", Tags: []string{"IA", "Sostenibilidad"}, Author: "Natalia Torres"},
	{ID: "idea_119", Title: "Seguimiento de envíos por blockchain", Tags: []string{"Blockchain", "Logística"}, Author: "Carlos Herrera"},
	{ID: "idea_120", Title: "Asistente de salud mental virtual", Tags: []string{"IA", "Salud"}, Author: "Beatriz Flores"},
	{ID: "idea_121", Title: "Simulador de energía renovable", Tags: []string{"Educación", "Energía"}, Author: "Andrés Rojas"},
	{ID: "idea_122", Title: "Plataforma de mentorías en línea", Tags: []string{"Educación", "Comunidad"}, Author: "Fernanda Díaz"},
	{ID: "idea_123", Title: "Optimización de rutas de entrega urbana", Tags: []string{"IA", "Logística"}, Author: "Mario Paredes"},
	{ID: "idea_124", Title: "Sensores para medir calidad del aire", Tags: []string{"IoT", "Sostenibilidad"}, Author: "Andrea Salas"},
	{ID: "idea_125", Title: "Sistema de tutorías entre estudiantes", Tags: []string{"Educación", "Comunidad"}, Author: "José Aguilar"},
	{ID: "idea_104", Title: "Plataforma de reciclaje colaborativo", Tags: []string{"Sostenibilidad", "Educación"}, Author: "Carlos Vega"},
}
