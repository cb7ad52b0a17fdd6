package resume_test

import (
	"strings"
	"testing"

	"github.com/vetlink/vetlink-api/internal/resume"
)

func TestExtract_EmptyText(t *testing.T) {
	got := resume.Extract("")
	want := resume.MilitaryRecord{Clearance: resume.ClearanceNone}
	if got != want {
		t.Fatalf("Extract(\"\") = %+v, want %+v", got, want)
	}
}

func TestExtract_Branch(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Served with the Army National Guard", resume.BranchArmyNationalGuard},
		{"ARNG, 2nd Battalion", resume.BranchArmyNationalGuard},
		{"U.S. Army Reserve drilling soldier", resume.BranchArmyReserve},
		{"Member of the USMCR", resume.BranchMarineCorpsReserve},
		{"Soldier, 82nd Airborne", resume.BranchArmy},
		{"USAF maintenance airman", resume.BranchArmy},
		{"Air Force airman", resume.BranchAirForce},
		{"Sailor aboard USS Nimitz", resume.BranchNavy},
		{"US Marine Corps infantry", resume.BranchMarineCorps},
		{"Coast Guard boatswain", resume.BranchCoastGuard},
		{"Space Force operator", resume.BranchSpaceForce},
		{"Managed a language program", resume.BranchAirNationalGuard},
		{"Army veteran, changed units", resume.BranchAirNationalGuard},
		{"Civilian logistics coordinator", ""},
	}
	for _, c := range cases {
		if got := resume.Extract(c.text).Branch; got != c.want {
			t.Errorf("Branch(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtract_Rank(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Promoted to Staff Sergeant in 2015", "Staff Sergeant"},
		{"Rank: SSG", "Staff Sergeant"},
		{"Sergeant, squad level", "Sergeant"},
		{"SFC Smith", "Sergeant First Class"},
		{"Navy LCDR, surface warfare", "Lieutenant Commander"},
		{"CAPT, USN", "Captain"},
		{"Master Gunnery Sergeant (ret.)", "Master Gunnery Sergeant"},
		{"sergeants and soldiers", ""},
	}
	for _, c := range cases {
		if got := resume.Extract(c.text).Rank; got != c.want {
			t.Errorf("Rank(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtract_MOS(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"army mos on keyword line", "Served 4 years\nMOS: 11B Infantryman", "11B"},
		{"marine four digit", "Primary MOS 0311 Rifleman", "0311"},
		{"air force afsc", "AFSC 3d0x2 cyber systems", "3d0x2"},
		{"keyword line preferred over earlier match", "Unit 25B section\nJob code: 68W", "68W"},
		{"fallback to whole text", "Trained as 92Y supply specialist", "92Y"},
		{"none", "Nothing to see here", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := resume.Extract(c.text).MOS; got != c.want {
				t.Errorf("MOS = %q, want %q", got, c.want)
			}
		})
	}
}

func TestExtract_YearsOfService(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"four years spanning six", "Enlisted 2010, deployed 2012, promoted 2014, separated 2016", 6},
		{"repeated single year", "2015 and again 2015", 0},
		{"one year", "Since 2019", 0},
		{"span of forty", "Born 1960, retired 2000", 0},
		{"span of thirty-nine", "1970 to 2009", 39},
		{"ignores non-year numbers", "Unit 3100, 2001 to 2005", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := resume.Extract(c.text).YearsOfService; got != c.want {
				t.Errorf("YearsOfService = %d, want %d", got, c.want)
			}
		})
	}
}

func TestExtract_Clearance(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Held Secret, later Top Secret", resume.ClearanceTopSecret},
		{"Active TS/SCI", resume.ClearanceTopSecret},
		{"Secret clearance", resume.ClearanceSecret},
		{"No clearance", resume.ClearanceNone},
	}
	for _, c := range cases {
		if got := resume.Extract(c.text).Clearance; got != c.want {
			t.Errorf("Clearance(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtract_LeadershipRole(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Served as squad leader for 9 soldiers", "Squad Leader"},
		{"Team Leader and later Platoon Sergeant", "Team Leader"},
		{"NCOIC of motor pool", "Oic"},
		{"Shift supervisor", "Supervisor"},
		{"Made a good choice", "Oic"},
		{"Drove the convoy", ""},
	}
	for _, c := range cases {
		if got := resume.Extract(c.text).LeadershipRole; got != c.want {
			t.Errorf("LeadershipRole(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtract_AwardsCollectsAll(t *testing.T) {
	text := "Awarded the Purple Heart, Bronze Star and Army Commendation Medal"
	got := resume.Extract(text).Awards
	want := "Bronze Star, Commendation Medal, Purple Heart"
	if got != want {
		t.Fatalf("Awards = %q, want %q", got, want)
	}
}

func TestExtract_Description(t *testing.T) {
	got := resume.Extract("  Infantry\n\n\tteam   leader  ").Description
	if got != "Infantry team leader" {
		t.Fatalf("Description = %q", got)
	}

	long := strings.Repeat("a", 600)
	if got := resume.Extract(long).Description; len(got) != 500 {
		t.Fatalf("Description length = %d, want 500", len(got))
	}
}

func TestExtract_FullDocument(t *testing.T) {
	text := `CERTIFICATE OF RELEASE OR DISCHARGE FROM ACTIVE DUTY
Branch: United States Army
Grade/Rank: Staff Sergeant (SSG)
Primary specialty: 88M Motor Transport Operator
Date entered active duty: 2008  Separation date: 2016
Clearance: Secret
Served as Squad Leader
Decorations: Army Achievement Medal, Army Commendation Medal`

	got := resume.Extract(text)
	want := resume.MilitaryRecord{
		Branch:         resume.BranchArmy,
		Rank:           "Staff Sergeant",
		MOS:            "88M",
		YearsOfService: 8,
		Clearance:      resume.ClearanceSecret,
		LeadershipRole: "Squad Leader",
		Awards:         "Commendation Medal, Achievement Medal",
	}
	got.Description = ""
	if got != want {
		t.Fatalf("Extract = %+v\nwant %+v", got, want)
	}
}
