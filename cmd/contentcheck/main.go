package main

import (
	"fmt"
	"os"

	"community-connect-be/internal/model"
	"community-connect-be/internal/repository/memory"
	"community-connect-be/pkg/catalog"

	"github.com/fatih/color"
)

// contentcheck validates the embedded content packs before a release:
// every pack language, section counts, unique item ids, and cross-language
// parity of the structural pieces (navigation, passport steps).

var problems int

func fail(format string, args ...interface{}) {
	color.Red("  ✗ "+format, args...)
	problems++
}

func ok(format string, args ...interface{}) {
	color.Green("  ✓ "+format, args...)
}

func main() {
	repo, err := memory.NewContentRepository()
	if err != nil {
		color.Red("failed to load content packs: %v", err)
		os.Exit(1)
	}

	langs := repo.PackLanguages()
	fmt.Printf("Loaded %d content packs: %v\n", len(langs), langs)

	var reference *model.ContentPack
	for _, lang := range langs {
		pack, _ := repo.Pack(lang)
		fmt.Printf("\nPack %q:\n", lang)
		checkPack(pack)
		if reference == nil {
			reference = pack
			continue
		}
		checkParity(reference, pack)
	}

	fmt.Println()
	if problems > 0 {
		color.Red("%d problem(s) found", problems)
		os.Exit(1)
	}
	color.Green("All content packs are consistent")
}

func checkPack(pack *model.ContentPack) {
	sections := []struct {
		name  string
		items []catalog.Item
	}{
		{"services", pack.Services},
		{"vital_info", pack.VitalInfo},
		{"programs", pack.Programs},
		{"health_news", pack.HealthNews},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			fail("section %s is empty", section.name)
			continue
		}
		seen := make(map[string]bool, len(section.items))
		for _, item := range section.items {
			if item.ID == "" {
				fail("%s: item %q has no id", section.name, item.Title)
			}
			if seen[item.ID] {
				fail("%s: duplicate id %q", section.name, item.ID)
			}
			seen[item.ID] = true
			if item.Title == "" || item.Summary == "" {
				fail("%s: item %q missing title or summary", section.name, item.ID)
			}
		}
		ok("%s: %d items, ids unique", section.name, len(section.items))
	}

	if len(pack.Navigation) == 0 {
		fail("navigation is empty")
	}
	if len(pack.Clinics) == 0 || len(pack.Hospitals) == 0 {
		fail("facility lists incomplete (%d clinics, %d hospitals)", len(pack.Clinics), len(pack.Hospitals))
	} else {
		ok("facilities: %d clinics, %d hospitals", len(pack.Clinics), len(pack.Hospitals))
	}
	if len(pack.PassportSteps) != 5 {
		fail("expected 5 passport steps, got %d", len(pack.PassportSteps))
	} else {
		ok("passport wizard: %d steps, %d documents, %d locations",
			len(pack.PassportSteps), len(pack.PassportDocuments), len(pack.PassportLocations))
	}
	if len(pack.Appointments.Slots) == 0 || len(pack.Appointments.Areas) == 0 {
		fail("appointment options incomplete")
	}
}

// checkParity verifies translated packs keep the same structure as the
// reference so index-based wizard selections mean the same thing everywhere.
func checkParity(reference, pack *model.ContentPack) {
	if len(pack.Navigation) != len(reference.Navigation) {
		fail("navigation length differs from %q (%d vs %d)",
			reference.Language, len(pack.Navigation), len(reference.Navigation))
	}
	if len(pack.PassportSteps) != len(reference.PassportSteps) {
		fail("passport steps differ from %q", reference.Language)
	}
	if len(pack.PassportLocations) != len(reference.PassportLocations) {
		fail("passport locations differ from %q", reference.Language)
	}
	if len(pack.Appointments.Slots) != len(reference.Appointments.Slots) {
		fail("appointment slots differ from %q", reference.Language)
	}
	ok("structure matches %q", reference.Language)
}
