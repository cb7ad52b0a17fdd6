package resume

// Vocabulary tables are ordered: the first matching entry wins.

const (
	BranchArmyNationalGuard  = "Army National Guard"
	BranchAirNationalGuard   = "Air National Guard"
	BranchArmyReserve        = "Army Reserve"
	BranchNavyReserve        = "Navy Reserve"
	BranchMarineCorpsReserve = "Marine Corps Reserve"
	BranchAirForceReserve    = "Air Force Reserve"
	BranchCoastGuardReserve  = "Coast Guard Reserve"
	BranchArmy               = "Army"
	BranchNavy               = "Navy"
	BranchAirForce           = "Air Force"
	BranchMarineCorps        = "Marine Corps"
	BranchCoastGuard         = "Coast Guard"
	BranchSpaceForce         = "Space Force"
)

const (
	ClearanceNone      = "None"
	ClearanceSecret    = "Secret"
	ClearanceTopSecret = "Top Secret (TS/SCI)"
)

type branchRule struct {
	branch   string
	keywords []string
}

// Reserve and Guard components come before their parent service so that
// "army reserve" is not reported as "Army".
var branchRules = []branchRule{
	{BranchArmyNationalGuard, []string{"army national guard", "arng"}},
	{BranchAirNationalGuard, []string{"air national guard", "ang"}},
	{BranchArmyReserve, []string{"army reserve", "usar"}},
	{BranchNavyReserve, []string{"navy reserve", "usnr"}},
	{BranchMarineCorpsReserve, []string{"marine corps reserve", "usmcr"}},
	{BranchAirForceReserve, []string{"air force reserve", "usfr"}},
	{BranchCoastGuardReserve, []string{"coast guard reserve", "uscgr"}},
	{BranchArmy, []string{"army", "soldier", "usa"}},
	{BranchNavy, []string{"navy", "sailor", "usn"}},
	{BranchAirForce, []string{"air force", "airman", "usaf"}},
	{BranchMarineCorps, []string{"marine", "corps", "usmc"}},
	{BranchCoastGuard, []string{"coast guard", "uscg"}},
	{BranchSpaceForce, []string{"space force", "ussf"}},
}

// rankTable maps abbreviations and full names to a display rank. Keys are
// shared across services, so "capt" always resolves to the Army "Captain".
var rankTable = map[string]string{
	// Army enlisted
	"pvt":                    "Private",
	"private":                "Private",
	"pfc":                    "Private First Class",
	"private first class":    "Private First Class",
	"spc":                    "Specialist",
	"specialist":             "Specialist",
	"cpl":                    "Corporal",
	"corporal":               "Corporal",
	"sgt":                    "Sergeant",
	"sergeant":               "Sergeant",
	"ssg":                    "Staff Sergeant",
	"staff sergeant":         "Staff Sergeant",
	"sfc":                    "Sergeant First Class",
	"sergeant first class":   "Sergeant First Class",
	"msg":                    "Master Sergeant",
	"master sergeant":        "Master Sergeant",
	"1sg":                    "First Sergeant",
	"first sergeant":         "First Sergeant",
	"sgm":                    "Sergeant Major",
	"sergeant major":         "Sergeant Major",
	"csm":                    "Command Sergeant Major",
	"command sergeant major": "Command Sergeant Major",

	// Warrant officers
	"wo1":                   "Warrant Officer",
	"warrant officer":       "Warrant Officer",
	"cw2":                   "Chief Warrant Officer",
	"cw3":                   "Chief Warrant Officer",
	"cw4":                   "Chief Warrant Officer",
	"chief warrant officer": "Chief Warrant Officer",

	// Army officers
	"2lt":                "Second Lieutenant",
	"second lieutenant":  "Second Lieutenant",
	"1lt":                "First Lieutenant",
	"first lieutenant":   "First Lieutenant",
	"cpt":                "Captain",
	"capt":               "Captain",
	"captain":            "Captain",
	"maj":                "Major",
	"major":              "Major",
	"ltc":                "Lieutenant Colonel",
	"lieutenant colonel": "Lieutenant Colonel",
	"col":                "Colonel",
	"colonel":            "Colonel",
	"brigadier general":  "Brigadier General",

	// Navy
	"seaman":                     "Seaman",
	"po3":                        "Petty Officer Third Class",
	"petty officer third class":  "Petty Officer Third Class",
	"po2":                        "Petty Officer Second Class",
	"petty officer second class": "Petty Officer Second Class",
	"po1":                        "Petty Officer First Class",
	"petty officer first class":  "Petty Officer First Class",
	"cpo":                        "Chief Petty Officer",
	"chief petty officer":        "Chief Petty Officer",
	"senior chief petty officer": "Senior Chief Petty Officer",
	"master chief petty officer": "Master Chief Petty Officer",
	"ens":                        "Ensign",
	"ensign":                     "Ensign",
	"ltjg":                       "Lieutenant Junior Grade",
	"lt":                         "Lieutenant",
	"lieutenant":                 "Lieutenant",
	"lcdr":                       "Lieutenant Commander",
	"lieutenant commander":       "Lieutenant Commander",
	"cdr":                        "Commander",
	"commander":                  "Commander",

	// Air Force
	"a1c":                    "Airman First Class",
	"airman first class":     "Airman First Class",
	"sra":                    "Senior Airman",
	"senior airman":          "Senior Airman",
	"ssgt":                   "Staff Sergeant",
	"tsgt":                   "Technical Sergeant",
	"technical sergeant":     "Technical Sergeant",
	"msgt":                   "Master Sergeant",
	"smsgt":                  "Senior Master Sergeant",
	"senior master sergeant": "Senior Master Sergeant",
	"cmsgt":                  "Chief Master Sergeant",
	"chief master sergeant":  "Chief Master Sergeant",

	// Marine Corps
	"lcpl":                    "Lance Corporal",
	"lance corporal":          "Lance Corporal",
	"gysgt":                   "Gunnery Sergeant",
	"gunnery sergeant":        "Gunnery Sergeant",
	"mgysgt":                  "Master Gunnery Sergeant",
	"master gunnery sergeant": "Master Gunnery Sergeant",
	"sgtmaj":                  "Sergeant Major",
}

// mosKeywords mark lines likely to carry an occupational code.
var mosKeywords = []string{"mos", "afsc", "rate", "specialty", "code", "job"}

// leadershipRoles are checked in order; "oic" is listed before "ncoic" and wins on it.
var leadershipRoles = []string{
	"team leader",
	"squad leader",
	"platoon sergeant",
	"detachment commander",
	"department head",
	"oic",
	"ncoic",
	"supervisor",
}

var awardNames = []string{
	"bronze star",
	"commendation medal",
	"achievement medal",
	"meritorious service",
	"purple heart",
	"distinguished service",
}
