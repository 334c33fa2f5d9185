package model

// Sentiment is the three-way patient sentiment taxonomy.
type Sentiment string

const (
	SentimentAnxious   Sentiment = "Anxious"
	SentimentNeutral   Sentiment = "Neutral"
	SentimentReassured Sentiment = "Reassured"
)

// Intent is the patient intent taxonomy.
type Intent string

const (
	IntentSeekingReassurance Intent = "Seeking reassurance"
	IntentReportingSymptoms  Intent = "Reporting symptoms"
	IntentExpressingConcern  Intent = "Expressing concern"
)

// Analysis method tags, informational only.
const (
	MethodStatistical = "statistical"
	MethodRuleBased   = "rule_based"
)

// EntityRecord is the canonical structured clinical record produced by the
// extraction cascade. List fields hold non-empty trimmed strings with
// case-insensitive duplicates collapsed to the first-seen capitalization.
// JSON field names are part of the external contract and must not change.
type EntityRecord struct {
	PatientName   string   `json:"Patient_Name"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     string   `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus string   `json:"Current_Status"`
	Prognosis     string   `json:"Prognosis"`
}

// NewEntityRecord returns a record with empty, non-nil list fields so it
// always marshals with all keys present.
func NewEntityRecord() EntityRecord {
	return EntityRecord{Symptoms: []string{}, Treatment: []string{}}
}

// SummaryRecord is the patient-facing summary. It is a sibling derivation of
// EntityRecord produced by the summarizer's own merge logic, not a subtype.
type SummaryRecord struct {
	PatientName   string   `json:"Patient_Name"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     string   `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus string   `json:"Current_Status"`
	Prognosis     string   `json:"Prognosis"`
}

// NewSummaryRecord returns a summary with empty, non-nil list fields.
func NewSummaryRecord() SummaryRecord {
	return SummaryRecord{Symptoms: []string{}, Treatment: []string{}}
}

// SentimentResult is a single-label sentiment + intent classification.
// Confidence and Method describe how the result was produced and are never
// consumed for branching.
type SentimentResult struct {
	Sentiment  Sentiment `json:"Sentiment"`
	Intent     Intent    `json:"Intent"`
	Confidence float64   `json:"confidence"`
	Method     string    `json:"analysis_method"`
}

// SOAPNote is a four-section clinical note plus derived metadata. It is
// rebuilt fresh per request and carries no identity of its own.
type SOAPNote struct {
	Subjective SOAPSubjective `json:"Subjective"`
	Objective  SOAPObjective  `json:"Objective"`
	Assessment SOAPAssessment `json:"Assessment"`
	Plan       SOAPPlan       `json:"Plan"`
	Metadata   SOAPMetadata   `json:"Metadata"`
}

type SOAPSubjective struct {
	PatientName             string `json:"Patient_Name"`
	ChiefComplaint          string `json:"Chief_Complaint"`
	HistoryOfPresentIllness string `json:"History_of_Present_Illness"`
	PatientSentiment        string `json:"Patient_Sentiment"`
	PatientIntent           string `json:"Patient_Intent"`
}

type SOAPObjective struct {
	PhysicalExam         string `json:"Physical_Exam"`
	Observations         string `json:"Observations"`
	VitalSigns           string `json:"Vital_Signs"`
	AssessmentConfidence string `json:"Assessment_Confidence"`
}

type SOAPAssessment struct {
	Diagnosis     string `json:"Diagnosis"`
	Severity      string `json:"Severity"`
	Prognosis     string `json:"Prognosis"`
	ClinicalNotes string `json:"Clinical_Notes"`
}

type SOAPPlan struct {
	Treatment        []string `json:"Treatment"`
	FollowUp         []string `json:"Follow_Up"`
	PatientEducation string   `json:"Patient_Education"`
	NextSteps        string   `json:"Next_Steps"`
}

type SOAPMetadata struct {
	TextLength           int    `json:"Text_Length"`
	KeywordsExtracted    int    `json:"Keywords_Extracted"`
	SymptomsIdentified   int    `json:"Symptoms_Identified"`
	TreatmentsIdentified int    `json:"Treatments_Identified"`
	AnalysisMethod       string `json:"Analysis_Method"`
}

// SessionSentiment is the compact sentiment shape the pipeline output carries.
type SessionSentiment struct {
	Session string `json:"session"`
	Intent  string `json:"intent"`
}

// PipelineResult is the full output of one pipeline invocation.
type PipelineResult struct {
	Entities  EntityRecord     `json:"entities"`
	Summary   SummaryRecord    `json:"summary"`
	Keywords  []string         `json:"keywords"`
	Sentiment SessionSentiment `json:"sentiment"`
	SOAP      SOAPNote         `json:"soap"`
}
