// Package domain models Singapore postal address records and their
// synthetic flood-risk assessment.
//
// # Data Source
//
// Address records originate from a OneMap-style geocoded export of Singapore
// postal codes, distributed as a gzip-compressed UTF-8 JSON array. Each object
// carries at least:
//
//	POSTAL     — 6-digit postal code, the unique record key
//	ADDRESS    — full formatted address
//	ROAD_NAME  — road component
//	BUILDING   — building name, with the literal string "NIL" meaning absent
//	LATITUDE   — WGS-84 latitude, numeric or numeric string
//	LONGITUDE  — WGS-84 longitude, numeric or numeric string
//
// Singapore postal codes are exactly six decimal digits; the first two digits
// identify the postal sector. Validation rejects anything else, including
// surrounding whitespace, before a lookup is attempted.
//
// # Risk Model
//
// Flood depths are synthetic placeholders: each query samples two depths,
// one per climate scenario, uniformly from [0, 1.5] meters. The
// [ScenarioGenerator] interface isolates this so a real hydrological model can
// be substituted without touching the classifier or the store.
//
// Scenarios:
//
//	Baseline — current rainfall and tidal conditions
//	RCP8.5   — future worst-case scenario with increased rainfall and
//	           sea level rise
//
// Depth classification (thresholds are exact, boundaries inclusive on the
// Medium band):
//
//	depth < 0.5          → Low    (#50d890)
//	0.5 ≤ depth ≤ 1.0    → Medium (#ffc26f)
//	depth > 1.0          → High   (#ff595e)
//
// # Risk Flags
//
// Each record carries two boolean flags sampled once at store load time and
// held fixed for the process lifetime:
//
//	flood-prone area — Bernoulli(0.15), historically low-lying location
//	flood hotspot    — Bernoulli(0.10), localized flash flooding despite
//	                   drainage improvements
//
// The flags are statistically independent of each other and across records.
// They stand in for real historical data and are never resampled by a lookup;
// only an explicit store invalidation draws new flags.
package domain
