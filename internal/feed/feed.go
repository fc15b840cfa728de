// Package feed derives the read-side view of the catalog: build and meetup
// cards, filter tabs, pluralised counters and the landing-page summary.
// Everything here is a pure function of the collections and the current time.
package feed

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/torquehub/internal/datefmt"
	"github.com/pkordes/torquehub/internal/domain"
	"github.com/pkordes/torquehub/internal/lines"
)

// RegionalCrews is the fixed crew count shown on the landing page.
const RegionalCrews = 23

// garageFeedSize is how many of the newest builds the landing page shows.
const garageFeedSize = 3

// SocialLink is one parsed socials entry. Inert links have Href "#" and
// should not be followed.
type SocialLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Inert bool   `json:"inert"`
}

// BuildCard is a Build plus everything needed to render it.
type BuildCard struct {
	domain.Build
	Badge       string       `json:"badge"`
	Icon        string       `json:"icon"`
	ModList     []string     `json:"modList"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Added       string       `json:"added"`
}

// Tab is one category filter button.
type Tab struct {
	Filter domain.CategoryFilter `json:"filter"`
	Label  string                `json:"label"`
	Active bool                  `json:"active"`
}

// BuildFeed is the filtered build list with its tabs and counter.
type BuildFeed struct {
	Filter  domain.CategoryFilter `json:"filter"`
	Tabs    []Tab                 `json:"tabs"`
	Count   int                   `json:"count"`
	Counter string                `json:"counter"`
	Builds  []BuildCard           `json:"builds"`
}

// MeetupCard is a Meetup plus everything needed to render it.
type MeetupCard struct {
	domain.Meetup
	When     string `json:"when"`
	MapURL   string `json:"mapUrl"`
	Posted   string `json:"posted"`
	HostedBy string `json:"hostedBy,omitempty"`
}

// MeetupFeed is the meetup list with its counter.
type MeetupFeed struct {
	Count   int          `json:"count"`
	Counter string       `json:"counter"`
	Meetups []MeetupCard `json:"meetups"`
}

// Summary holds the landing-page stats and the newest builds.
type Summary struct {
	ActiveGarages int         `json:"activeGarages"`
	UpcomingMeets int         `json:"upcomingMeets"`
	RegionalCrews int         `json:"regionalCrews"`
	GarageFeed    []BuildCard `json:"garageFeed"`
}

// ---- builds ----------------------------------------------------------------

// Badge returns the card badge for a category.
func Badge(c domain.BuildCategory) string {
	switch c {
	case domain.CategoryCar:
		return "Car Crew"
	case domain.CategoryBike:
		return "Two Wheels"
	default:
		return "In Progress"
	}
}

// Icon returns the garage-feed icon for a category.
func Icon(c domain.BuildCategory) string {
	switch c {
	case domain.CategoryCar:
		return "🔥"
	case domain.CategoryBike:
		return "🏍️"
	default:
		return "🛠️"
	}
}

// TabLabel returns the button label for a filter.
func TabLabel(f domain.CategoryFilter) string {
	switch f {
	case domain.FilterAll:
		return "All Builds"
	case domain.CategoryFilter(domain.CategoryCar):
		return "Cars"
	case domain.CategoryFilter(domain.CategoryBike):
		return "Bikes"
	default:
		return "Projects"
	}
}

// Tabs returns every filter tab with active marking the selected one.
func Tabs(active domain.CategoryFilter) []Tab {
	tabs := make([]Tab, 0, len(domain.Filters))
	for _, f := range domain.Filters {
		tabs = append(tabs, Tab{Filter: f, Label: TabLabel(f), Active: f == active})
	}
	return tabs
}

// SocialHref maps one socials entry to a link target:
// URLs link to themselves, "@handle" links to Instagram, anything mentioning
// discord.gg links to itself, and everything else is inert ("#").
func SocialHref(entry string) string {
	switch {
	case strings.HasPrefix(entry, "http"):
		return entry
	case strings.HasPrefix(entry, "@"):
		return "https://instagram.com/" + entry[1:]
	case strings.Contains(entry, "discord.gg"):
		return entry
	default:
		return "#"
	}
}

// SocialLinks parses a newline-delimited socials field.
func SocialLinks(socials string) []SocialLink {
	entries := lines.Parse(socials)
	out := make([]SocialLink, 0, len(entries))
	for _, e := range entries {
		href := SocialHref(e)
		out = append(out, SocialLink{Label: e, Href: href, Inert: href == "#"})
	}
	return out
}

// NewBuildCard renders b as of now.
func NewBuildCard(b domain.Build, now time.Time) BuildCard {
	return BuildCard{
		Build:       b,
		Badge:       Badge(b.Category),
		Icon:        Icon(b.Category),
		ModList:     lines.Parse(b.Mods),
		SocialLinks: SocialLinks(b.Socials),
		Added:       datefmt.RelativeAge(b.CreatedAt, now),
	}
}

func buildCards(builds []domain.Build, now time.Time) []BuildCard {
	out := make([]BuildCard, 0, len(builds))
	for _, b := range builds {
		out = append(out, NewBuildCard(b, now))
	}
	return out
}

// NewBuildFeed renders an already-filtered build list.
func NewBuildFeed(filter domain.CategoryFilter, builds []domain.Build, now time.Time) BuildFeed {
	return BuildFeed{
		Filter:  filter,
		Tabs:    Tabs(filter),
		Count:   len(builds),
		Counter: BuildCounter(len(builds)),
		Builds:  buildCards(builds, now),
	}
}

// ---- meetups ---------------------------------------------------------------

// When returns the friendly date ("Date TBA" when empty) followed by
// " • <time>" when a time is set.
func When(m domain.Meetup) string {
	when := "Date TBA"
	if m.Date != "" {
		when = datefmt.Friendly(m.Date)
	}
	if m.Time != "" {
		when += " • " + m.Time
	}
	return when
}

// MapURL returns the embeddable map preview for a location.
func MapURL(location string) string {
	return "https://maps.google.com/maps?q=" + escapeComponent(location) + "&z=13&output=embed"
}

// escapeComponent percent-encodes s for use as a single query value,
// encoding spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// HostedBy returns the organizer line, or "" when there is no organizer.
// Organizers that already read "Hosted by ..." are not prefixed twice.
func HostedBy(organizer string) string {
	organizer = strings.TrimSpace(organizer)
	if organizer == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(organizer), "hosted by ") {
		return organizer
	}
	return "Hosted by " + organizer
}

// NewMeetupCard renders m as of now.
func NewMeetupCard(m domain.Meetup, now time.Time) MeetupCard {
	return MeetupCard{
		Meetup:   m,
		When:     When(m),
		MapURL:   MapURL(m.Location),
		Posted:   datefmt.RelativeAge(m.CreatedAt, now),
		HostedBy: HostedBy(m.Organizer),
	}
}

// NewMeetupFeed renders the meetup list.
func NewMeetupFeed(meetups []domain.Meetup, now time.Time) MeetupFeed {
	cards := make([]MeetupCard, 0, len(meetups))
	for _, m := range meetups {
		cards = append(cards, NewMeetupCard(m, now))
	}
	return MeetupFeed{
		Count:   len(meetups),
		Counter: MeetupCounter(len(meetups)),
		Meetups: cards,
	}
}

// ---- summary ---------------------------------------------------------------

// NewSummary builds the landing-page stats from both full collections.
func NewSummary(builds []domain.Build, meetups []domain.Meetup, now time.Time) Summary {
	newest := builds[:min(len(builds), garageFeedSize)]
	return Summary{
		ActiveGarages: len(builds),
		UpcomingMeets: len(meetups),
		RegionalCrews: RegionalCrews,
		GarageFeed:    buildCards(newest, now),
	}
}
