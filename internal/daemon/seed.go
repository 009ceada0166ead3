package daemon

// seedTables are the translation tables written on first start. Locales
// that already have a stored table are left untouched.
var seedTables = map[string]map[string]string{
	"en_US": {
		"notes.title":          "Notes",
		"notes.empty":          "No notes yet",
		"notes.form.hint":      "enter: save, esc: cancel",
		"note.created_success": "Note created successfully",
		"note.create_failed":   "Could not create note",
		"note.deleted":         "Note deleted",
		"note.delete_failed":   "Could not delete note",
		"note.delete_confirm":  "Delete this note?",
		"locale.switched":      "Language changed",
		"locale.switch_failed": "Could not change language",
		"summary.title":        "Summary",
		"summary.total":        "Total",
		"category.all":         "all",
		"category.general":     "general",
		"category.todo":        "todo",
		"category.ideas":       "ideas",
		"category.work":        "work",
		"category.personal":    "personal",
	},
	"fr_FR": {
		"notes.title":          "Mes notes",
		"notes.empty":          "Aucune note",
		"notes.form.hint":      "entrée: enregistrer, échap: annuler",
		"note.created_success": "Note créée",
		"note.create_failed":   "Création impossible",
		"note.deleted":         "Note supprimée",
		"note.delete_failed":   "Suppression impossible",
		"note.delete_confirm":  "Supprimer cette note ?",
		"locale.switched":      "Langue changée",
		"locale.switch_failed": "Changement de langue impossible",
		"summary.title":        "Résumé",
		"summary.total":        "Total",
		"category.all":         "toutes",
		"category.general":     "général",
		"category.todo":        "à faire",
		"category.ideas":       "idées",
		"category.work":        "travail",
		"category.personal":    "personnel",
	},
	"de_DE": {
		"notes.title":          "Notizen",
		"notes.empty":          "Noch keine Notizen",
		"notes.form.hint":      "Enter: speichern, Esc: abbrechen",
		"note.created_success": "Notiz erstellt",
		"note.create_failed":   "Notiz konnte nicht erstellt werden",
		"note.deleted":         "Notiz gelöscht",
		"note.delete_failed":   "Notiz konnte nicht gelöscht werden",
		"note.delete_confirm":  "Diese Notiz löschen?",
		"locale.switched":      "Sprache geändert",
		"locale.switch_failed": "Sprache konnte nicht geändert werden",
		"summary.title":        "Übersicht",
		"summary.total":        "Gesamt",
		"category.all":         "alle",
		"category.general":     "allgemein",
		"category.todo":        "aufgaben",
		"category.ideas":       "ideen",
		"category.work":        "arbeit",
		"category.personal":    "privat",
	},
}
