package i18n

// Key identifies a translatable UI string.
type Key string

const (
	KeyCalendarNotes  Key = "calendarNotes"
	KeyAddNote        Key = "addNote"
	KeyEditNote       Key = "editNote"
	KeyMonth          Key = "month"
	KeyWeek           Key = "week"
	KeyDay            Key = "day"
	KeyNotes          Key = "notes"
	KeyLightMode      Key = "lightMode"
	KeyDarkMode       Key = "darkMode"
	KeyLanguage       Key = "language"
	KeyWeekOf         Key = "weekOf"
	KeyTitle          Key = "title"
	KeyContent        Key = "content"
	KeyDate           Key = "date"
	KeyTime           Key = "time"
	KeyColor          Key = "color"
	KeyTags           Key = "tags"
	KeyCancel         Key = "cancel"
	KeySave           Key = "save"
	KeyNoteAdded      Key = "noteAdded"
	KeyNoteUpdated    Key = "noteUpdated"
	KeyNoteDeleted    Key = "noteDeleted"
	KeyNoNotes        Key = "noNotes"
	KeyAllNotesFor    Key = "allNotesFor"
	KeyCurrentHour    Key = "currentHour"
	KeyTimeline       Key = "timeline"
	KeyToday          Key = "today"
	KeyDelete         Key = "delete"
	KeyConfirmDelete  Key = "confirmDelete"
	KeyConfirmMessage Key = "confirmDeleteMessage"
	KeyWelcome        Key = "welcome"
	KeyWelcomeNote    Key = "welcomeNote"
	KeyClickAddNote   Key = "clickAddNote"
	KeyMoreNotes      Key = "moreNotes"
	KeyMarkComplete   Key = "markComplete"
	KeyMarkIncomplete Key = "markIncomplete"
	KeyPin            Key = "pin"
	KeyUnpin          Key = "unpin"
	KeyReminder       Key = "reminder"
	KeySearch         Key = "search"
	KeyNoMatches      Key = "noMatches"
)

var trStrings = map[Key]string{
	KeyCalendarNotes:  "Takvim Notları",
	KeyAddNote:        "Not Ekle",
	KeyEditNote:       "Notu Düzenle",
	KeyMonth:          "Ay",
	KeyWeek:           "Hafta",
	KeyDay:            "Gün",
	KeyNotes:          "Notlar",
	KeyLightMode:      "Aydınlık Mod",
	KeyDarkMode:       "Karanlık Mod",
	KeyLanguage:       "Dil",
	KeyWeekOf:         "Hafta",
	KeyTitle:          "Başlık",
	KeyContent:        "İçerik",
	KeyDate:           "Tarih",
	KeyTime:           "Saat",
	KeyColor:          "Renk",
	KeyTags:           "Etiketler",
	KeyCancel:         "İptal",
	KeySave:           "Kaydet",
	KeyNoteAdded:      "Not Eklendi",
	KeyNoteUpdated:    "Not Güncellendi",
	KeyNoteDeleted:    "Not Silindi",
	KeyNoNotes:        "Bu gün için not bulunmuyor",
	KeyAllNotesFor:    "Şu tarih için tüm notlar",
	KeyCurrentHour:    "Şu anki saat - Not yok",
	KeyTimeline:       "Zaman Çizelgesi",
	KeyToday:          "Bugün",
	KeyDelete:         "Sil",
	KeyConfirmDelete:  "Silmeyi Onayla",
	KeyConfirmMessage: "Bu notu silmek istediğinizden emin misiniz? Bu işlem geri alınamaz.",
	KeyWelcome:        "Hoş Geldiniz",
	KeyWelcomeNote:    "Takvim Notları uygulamasına hoş geldiniz! Başlamak için bir not ekleyin.",
	KeyClickAddNote:   "Bir not eklemek için n tuşuna basın",
	KeyMoreNotes:      "daha fazla",
	KeyMarkComplete:   "Tamamlandı olarak işaretle",
	KeyMarkIncomplete: "Tamamlanmadı olarak işaretle",
	KeyPin:            "Sabitle",
	KeyUnpin:          "Sabitliği kaldır",
	KeyReminder:       "Hatırlatıcı",
	KeySearch:         "Ara...",
	KeyNoMatches:      "Eşleşen not yok",

	"work":      "iş",
	"personal":  "kişisel",
	"important": "önemli",
	"meeting":   "toplantı",
	"idea":      "fikir",
	"task":      "görev",
}

var enStrings = map[Key]string{
	KeyCalendarNotes:  "Calendar Notes",
	KeyAddNote:        "Add Note",
	KeyEditNote:       "Edit Note",
	KeyMonth:          "Month",
	KeyWeek:           "Week",
	KeyDay:            "Day",
	KeyNotes:          "Notes",
	KeyLightMode:      "Light Mode",
	KeyDarkMode:       "Dark Mode",
	KeyLanguage:       "Language",
	KeyWeekOf:         "Week of",
	KeyTitle:          "Title",
	KeyContent:        "Content",
	KeyDate:           "Date",
	KeyTime:           "Time",
	KeyColor:          "Color",
	KeyTags:           "Tags",
	KeyCancel:         "Cancel",
	KeySave:           "Save",
	KeyNoteAdded:      "Note Added",
	KeyNoteUpdated:    "Note Updated",
	KeyNoteDeleted:    "Note Deleted",
	KeyNoNotes:        "No notes for this day",
	KeyAllNotesFor:    "All Notes for",
	KeyCurrentHour:    "Current hour - No notes",
	KeyTimeline:       "Timeline",
	KeyToday:          "Today",
	KeyDelete:         "Delete",
	KeyConfirmDelete:  "Confirm Delete",
	KeyConfirmMessage: "Are you sure you want to delete this note? This action cannot be undone.",
	KeyWelcome:        "Welcome",
	KeyWelcomeNote:    "Welcome to Calendar Notes! Add a note to get started.",
	KeyClickAddNote:   "Press n to add a note",
	KeyMoreNotes:      "more",
	KeyMarkComplete:   "Mark as Complete",
	KeyMarkIncomplete: "Mark as Incomplete",
	KeyPin:            "Pin",
	KeyUnpin:          "Unpin",
	KeyReminder:       "Reminder",
	KeySearch:         "Search...",
	KeyNoMatches:      "No matching notes",
}
