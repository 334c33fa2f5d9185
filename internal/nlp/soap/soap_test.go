package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medscribe/notetaker-api/internal/model"
)

func TestGenerateEmptyInput(t *testing.T) {
	note := Generate(Inputs{})

	assert.Equal(t, "Not recorded", note.Subjective.PatientName)
	assert.Equal(t, "Patient consultation - detailed history to be obtained", note.Subjective.ChiefComplaint)
	assert.NotEmpty(t, note.Subjective.HistoryOfPresentIllness)
	assert.Equal(t, string(model.SentimentNeutral), note.Subjective.PatientSentiment)

	assert.Equal(t, "Physical examination findings to be documented", note.Objective.PhysicalExam)
	assert.Equal(t, "To be documented during physical examination", note.Objective.VitalSigns)
	assert.Equal(t, "0.50", note.Objective.AssessmentConfidence)

	assert.Equal(t, "Diagnosis pending further evaluation", note.Assessment.Diagnosis)
	assert.Equal(t, "moderate", note.Assessment.Severity)
	assert.Equal(t, "Prognosis to be determined", note.Assessment.Prognosis)

	assert.Equal(t, []string{"Treatment plan to be determined based on assessment"}, note.Plan.Treatment)
	assert.Equal(t, []string{"Return if symptoms worsen or persist"}, note.Plan.FollowUp)

	assert.Equal(t, model.MethodRuleBased, note.Metadata.AnalysisMethod)
	assert.Equal(t, 0, note.Metadata.SymptomsIdentified)
}

func TestGenerateWhiplashPlan(t *testing.T) {
	in := Inputs{
		Text: "I was in a car accident and my neck is stiff.",
		Entities: model.EntityRecord{
			PatientName:   "Janet Jones",
			Symptoms:      []string{"Neck pain", "Back pain"},
			Diagnosis:     "Whiplash injury",
			Treatment:     []string{"10 physiotherapy sessions"},
			CurrentStatus: "Occasional back pain",
			Prognosis:     "Full recovery expected within six months",
		},
		Sentiment: model.SentimentResult{
			Sentiment:  model.SentimentAnxious,
			Intent:     model.IntentSeekingReassurance,
			Confidence: 0.9,
			Method:     model.MethodStatistical,
		},
		Keywords: []string{"car accident", "neck pain"},
	}

	note := Generate(in)

	assert.Equal(t, "Janet Jones", note.Subjective.PatientName)
	assert.Equal(t, "Patient reports Neck pain, Back pain", note.Subjective.ChiefComplaint)
	assert.Contains(t, note.Subjective.HistoryOfPresentIllness, "Patient appears anxious about condition")

	// Existing physiotherapy entry suppresses the recommendation; pain
	// management is still added.
	assert.Contains(t, note.Plan.Treatment, "10 physiotherapy sessions")
	assert.NotContains(t, note.Plan.Treatment, "Physiotherapy sessions recommended")
	assert.Contains(t, note.Plan.Treatment, "Pain management as needed")

	// Prognosis mentions months: the 4-6 week follow-up rung wins, and the
	// anxious sentiment appends the education line.
	assert.Equal(t, []string{
		"Follow-up in 4-6 weeks to assess progress",
		"Patient education and reassurance provided",
	}, note.Plan.FollowUp)

	assert.Contains(t, note.Assessment.Severity, "mild")
	assert.Contains(t, note.Assessment.ClinicalNotes, "High confidence in assessment")
	assert.Equal(t, "0.90", note.Objective.AssessmentConfidence)

	assert.Equal(t, 2, note.Metadata.KeywordsExtracted)
	assert.Equal(t, 2, note.Metadata.SymptomsIdentified)
	assert.Equal(t, model.MethodStatistical, note.Metadata.AnalysisMethod)
}

func TestGenerateSummaryTakesPrecedence(t *testing.T) {
	in := Inputs{
		Entities: model.EntityRecord{PatientName: "Entity Name", Diagnosis: "entity diagnosis"},
		Summary:  model.SummaryRecord{PatientName: "Summary Name", Diagnosis: "summary diagnosis"},
	}
	note := Generate(in)
	assert.Equal(t, "Summary Name", note.Subjective.PatientName)
	assert.Equal(t, "summary diagnosis", note.Assessment.Diagnosis)
}

func TestGenerateObjectiveFindings(t *testing.T) {
	in := Inputs{
		Text:     "There is swelling and bruising, and everything is stiff and painful.",
		Entities: model.EntityRecord{Symptoms: []string{"Swelling"}},
	}
	note := Generate(in)

	assert.Contains(t, note.Objective.PhysicalExam, "Stiffness noted in affected areas")
	assert.Contains(t, note.Objective.PhysicalExam, "Swelling may be present")
	assert.Contains(t, note.Objective.PhysicalExam, "Bruising may be present")
}
