package feed

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	buildsKey = "%d builds"
	eventsKey = "%d events"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	mustSet(cat, buildsKey, plural.Selectf(1, "%d",
		plural.One, "%d build",
		plural.Other, "%d builds",
	))
	mustSet(cat, eventsKey, plural.Selectf(1, "%d",
		plural.One, "%d event",
		plural.Other, "%d events",
	))
	return message.NewPrinter(language.English, message.Catalog(cat))
}

func mustSet(cat *catalog.Builder, key string, msg catalog.Message) {
	if err := cat.Set(language.English, key, msg); err != nil {
		panic("feed: register message " + key + ": " + err.Error())
	}
}

// BuildCounter returns "1 build" or "n builds".
func BuildCounter(n int) string {
	return printer.Sprintf(buildsKey, n)
}

// MeetupCounter returns "1 event" or "n events".
func MeetupCounter(n int) string {
	return printer.Sprintf(eventsKey, n)
}
