package service

import (
	"time"

	"github.com/pkordes/torquehub/internal/datefmt"
	"github.com/pkordes/torquehub/internal/domain"
)

const day = 24 * time.Hour

// SeedBuilds returns the default build collection, newest first by position.
// createdAt values are relative to now.
func SeedBuilds(now time.Time) []domain.Build {
	ago := func(d time.Duration) int64 { return datefmt.Millis(now.Add(-d)) }

	return []domain.Build{
		{
			ID:        "bldr-1",
			Title:     "Night Runner 350Z",
			Platform:  "Nissan 350Z Track Edition",
			Year:      "2006",
			Category:  domain.CategoryCar,
			ImageURL:  "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&w=1400&q=80",
			Location:  "Long Beach, CA",
			Specs:     "HR30 V6 | 6-speed manual | 420whp / 398wtq | Fortune Auto 500 coilovers",
			Mods:      "Tomei Expreme Ti exhaust\nGreddy twin turbo kit\nStopTech big brake kit\nBride Zeta III seats",
			Owner:     `Mia "Boosted" Alvarez`,
			Socials:   "IG: @miarunsboost\nDiscord: BoostedMia#351Z",
			Notes:     "Dialed for canyon nights and Willow Springs track sessions. Always hunting for corner monsters.",
			CreatedAt: ago(12 * day),
		},
		{
			ID:        "bldr-2",
			Title:     "Ghostwave K7",
			Platform:  "Kawasaki Ninja ZX-6R",
			Year:      "2020",
			Category:  domain.CategoryBike,
			ImageURL:  "https://images.unsplash.com/photo-1517943052875-4d5c986dd734?auto=format&fit=crop&w=1400&q=80",
			Location:  "Austin, TX",
			Specs:     "636cc inline-4 | Quickshifter | 0-60 in 3.3s | Akrapovič full titanium system",
			Mods:      "Carbon fairing kit\nOhlins steering damper\nFlashTune ECU\nCustom stealth grey livery",
			Owner:     `Jordan "Ghostwave" Chen`,
			Socials:   "IG: @ghostwave.k7\nTrackAddict: ghostwave",
			Notes:     "Weekend hill country rides, weekday coffee pit-stops. Always down to link up for sunrise runs.",
			CreatedAt: ago(20 * day),
		},
		{
			ID:        "bldr-3",
			Title:     "WagonLab RS6",
			Platform:  "Audi RS6 Avant",
			Year:      "2022",
			Category:  domain.CategoryProject,
			ImageURL:  "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd0?auto=format&fit=crop&w=1400&q=80",
			Location:  "Portland, OR",
			Specs:     "4.0L twin-turbo V8 | 710hp / 715lb-ft | Air Lift 3H | Brembo GT kit",
			Mods:      "Unitronic Stage 3+\nMilltek sport exhaust\nRotiform LVS-M 22\"\nFully custom interior by Cascadia Auto",
			Owner:     `Sky "WagonLab" Rivera`,
			Socials:   "IG: @wagonlab\nYouTube: WagonLab",
			Notes:     "Family hauler that doubles as the rain city highway missile. Building out a modular overland-ready trunk system.",
			CreatedAt: ago(4 * day),
		},
	}
}

// SeedMeetups returns the default meetup collection.
func SeedMeetups(now time.Time) []domain.Meetup {
	ago := func(d time.Duration) int64 { return datefmt.Millis(now.Add(-d)) }

	return []domain.Meetup{
		{
			ID:        "mtp-1",
			Name:      "Sunset PCH Run",
			Date:      "2024-06-21",
			Time:      "19:00",
			Location:  "Malibu Bluffs Park - Malibu, CA",
			Vibe:      "Cruise + Photo Ops",
			Details:   "Golden hour cruise up the coast. Roll-in at 7p, wheels up 7:45. Bring radios (channel 7) and a full tank. Drone team on deck for rolling shots.",
			Organizer: "Hosted by TorqueHub LA",
			Link:      "https://discord.gg/torquehub",
			CreatedAt: ago(36 * time.Hour),
		},
		{
			ID:        "mtp-2",
			Name:      "Midnight Wrench Sesh",
			Date:      "2024-06-15",
			Time:      "22:30",
			Location:  "Boost Barn Collective - Austin, TX",
			Vibe:      "Shop Night",
			Details:   "Lift time, tunes, and tacos. BYO parts. Tire mounting and alignments available, sign up in #garage-bay.",
			Organizer: "Boost Barn Collective",
			Link:      "https://discord.gg/boostbarn",
			CreatedAt: ago(82 * time.Hour),
		},
	}
}
