package extract

import "regexp"

// Curated clinical vocabulary matched verbatim (case-insensitive) against the
// transcript. Order within each list is the match order, which decides which
// capitalization survives deduplication.
var (
	symptomKeywords = []string{
		"pain", "hurt", "ache", "sore", "tender", "stiff", "swollen", "bruised",
		"headache", "neck pain", "back pain", "shoulder pain", "knee pain",
		"chest pain", "abdominal pain", "stomach ache", "nausea", "vomiting",
		"dizziness", "fatigue", "weakness", "numbness", "tingling", "burning",
		"cramping", "spasms", "stiffness", "limited range", "difficulty moving",
	}

	treatmentKeywords = []string{
		"physiotherapy", "physical therapy", "physio", "therapy sessions",
		"medication", "drugs", "pills", "tablets", "injection", "surgery",
		"operation", "procedure", "treatment", "rehabilitation", "exercise",
		"stretching", "massage", "heat therapy", "ice therapy", "rest",
		"painkillers", "anti-inflammatory", "steroids", "muscle relaxants",
	}

	diagnosisKeywords = []string{
		"whiplash", "injury", "sprain", "strain", "fracture", "dislocation",
		"concussion", "contusion", "bruise", "inflammation", "arthritis",
		"tendinitis", "bursitis", "herniated disc", "pinched nerve", "sciatica",
		"carpal tunnel", "tennis elbow", "golfer's elbow", "frozen shoulder",
	}

	prognosisKeywords = []string{
		"recovery", "healing", "improvement", "better", "worse", "chronic",
		"acute", "temporary", "permanent", "expected", "prognosis", "outlook",
		"full recovery", "partial recovery", "long-term", "short-term",
		"within", "months", "weeks", "days", "gradual", "quick", "slow",
	}
)

// Enhanced phrase patterns evaluated before the plain keyword lists. The
// numeric-session treatment pattern captures its whole phrase.
var (
	symptomPatterns = compileAll(
		`neck pain`, `back pain`, `head pain`, `shoulder pain`,
		`knee pain`, `hip pain`, `chest pain`, `abdominal pain`,
		`headache`, `dizziness`, `nausea`, `vomiting`, `fatigue`,
		`stiffness`, `swelling`, `bruising`, `numbness`, `tingling`,
		`burning sensation`, `cramping`, `spasms`, `weakness`,
	)

	treatmentPatterns = compileAll(
		`(\d+\s+(?:physiotherapy|physio|therapy)\s+sessions)`,
		`physiotherapy`, `physical therapy`, `physio`,
		`painkillers?`, `medication`, `drugs`, `pills`, `tablets`,
		`surgery`, `operation`, `procedure`, `injection`,
		`rehabilitation`, `exercise`, `stretching`, `massage`,
		`heat therapy`, `ice therapy`, `ibuprofen`, `anti-inflammatory`,
		`steroids`, `muscle relaxants`, `rest`,
	)

	diagnosisPatterns = compileAll(
		`whiplash`, `whiplash injury`, `car accident injury`,
		`motor vehicle accident`, `sports injury`, `fall injury`,
		`sprain`, `strain`, `fracture`, `dislocation`, `concussion`,
		`contusion`, `bruise`, `inflammation`, `arthritis`,
		`tendinitis`, `bursitis`, `herniated disc`, `pinched nerve`,
		`sciatica`, `carpal tunnel`, `tennis elbow`, `frozen shoulder`,
	)
)

var sessionCountRe = regexp.MustCompile(`(\d+)\s*physiotherapy\s*sessions`)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}
