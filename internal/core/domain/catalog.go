package domain

import "strings"

// ErrorMarker is the localized substring that marks an error-class event name.
const ErrorMarker = "Ошибка"

// EventEntry maps an internal event code to its display name.
type EventEntry struct {
	// Code is the quoted dotted identifier stored in EventCodes.name,
	// e.g. "_$Session$_.Start" including the double quotes.
	Code string

	// Name is the display name shipped in the event field.
	Name string

	// IsError marks error-class events.
	IsError bool
}

// EventCatalog is an immutable ordered mapping from event code to entry.
type EventCatalog struct {
	entries []EventEntry
	byCode  map[string]int
}

// NewEventCatalog builds a catalog from code/name pairs, in order.
// IsError is derived from ErrorMarker; later duplicates of a code are ignored.
func NewEventCatalog(pairs ...[2]string) *EventCatalog {
	c := &EventCatalog{
		entries: make([]EventEntry, 0, len(pairs)),
		byCode:  make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := c.byCode[p[0]]; dup {
			continue
		}
		c.byCode[p[0]] = len(c.entries)
		c.entries = append(c.entries, EventEntry{
			Code:    p[0],
			Name:    p[1],
			IsError: strings.Contains(p[1], ErrorMarker),
		})
	}
	return c
}

// Lookup returns the entry for code.
// Unknown codes yield the zero entry and false.
func (c *EventCatalog) Lookup(code string) (EventEntry, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return EventEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all entries in catalog order.
func (c *EventCatalog) Entries() []EventEntry {
	out := make([]EventEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *EventCatalog) Len() int {
	return len(c.entries)
}

// DefaultEventCatalog returns the standard 1C event log catalog.
func DefaultEventCatalog() *EventCatalog {
	return NewEventCatalog(
		[2]string{`"_$Session$_.Start"`, "Сеанс. Начало"},
		[2]string{`"_$Session$_.Authentication"`, "Сеанс. Аутентификация"},
		[2]string{`"_$Session$_.Finish"`, "Сеанс. Завершение"},
		[2]string{`"_$InfoBase$_.ConfigUpdate"`, "Информационная база. Изменение конфигурации"},
		[2]string{`"_$InfoBase$_.DBConfigUpdate"`, "Информационная база. Изменение конфигурации базы данных"},
		[2]string{`"_$InfoBase$_.EventLogSettingsUpdate"`, "Информационная база. Изменение параметров журнала регистрации"},
		[2]string{`"_$InfoBase$_.InfoBaseAdmParamsUpdate"`, "Информационная база. Изменение параметров информационной базы"},
		[2]string{`"_$InfoBase$_.MasterNodeUpdate"`, "Информационная база. Изменение главного узла"},
		[2]string{`"_$InfoBase$_.RegionalSettingsUpdate"`, "Информационная база. Изменение региональных установок"},
		[2]string{`"_$InfoBase$_.TARInfo"`, "Тестирование и исправление. Сообщение"},
		[2]string{`"_$InfoBase$_.TARMess"`, "Тестирование и исправление. Предупреждение"},
		[2]string{`"_$InfoBase$_.TARImportant"`, "Тестирование и исправление. Ошибка"},
		[2]string{`"_$Data$_.New"`, "Данные. Добавление"},
		[2]string{`"_$Data$_.Update"`, "Данные. Изменение"},
		[2]string{`"_$Data$_.Delete"`, "Данные. Удаление"},
		[2]string{`"_$Data$_.TotalsPeriodUpdate"`, "Данные. Изменение периода рассчитанных итогов"},
		[2]string{`"_$Data$_.Post"`, "Данные. Проведение"},
		[2]string{`"_$Data$_.Unpost"`, "Данные. Отмена проведения"},
		[2]string{`"_$User$_.New"`, "Пользователи. Добавление"},
		[2]string{`"_$User$_.Update"`, "Пользователи. Изменение"},
		[2]string{`"_$User$_.Delete"`, "Пользователи. Удаление"},
		[2]string{`"_$Job$_.Start"`, "Фоновое задание. Запуск"},
		[2]string{`"_$Job$_.Succeed"`, "Фоновое задание. Успешное завершение"},
		[2]string{`"_$Job$_.Fail"`, "Фоновое задание. Ошибка выполнения"},
		[2]string{`"_$Job$_.Cancel"`, "Фоновое задание. Отмена"},
		[2]string{`"_$PerformError$_"`, "Ошибка выполнения"},
		[2]string{`"_$Transaction$_.Begin"`, "Транзакция. Начало"},
		[2]string{`"_$Transaction$_.Commit"`, "Транзакция. Фиксация"},
		[2]string{`"_$Transaction$_.Rollback"`, "Транзакция. Отмена"},
	)
}
