// Package soap synthesizes a four-section clinical note from the pipeline's
// other artifacts. Synthesis is pure derivation: it never fails, and absent
// data produces placeholder text rather than missing sections.
package soap

import (
	"fmt"
	"strings"

	"github.com/medscribe/notetaker-api/internal/model"
)

// Inputs carries everything the synthesizer consumes.
type Inputs struct {
	Text      string
	Entities  model.EntityRecord
	Summary   model.SummaryRecord
	Sentiment model.SentimentResult
	Keywords  []string
}

// Generate builds the SOAP note per the fixed derivation rules.
func Generate(in Inputs) model.SOAPNote {
	patientName := first(in.Summary.PatientName, in.Entities.PatientName, "Not recorded")
	symptoms := firstList(in.Summary.Symptoms, in.Entities.Symptoms)
	diagnosis := first(in.Summary.Diagnosis, in.Entities.Diagnosis, "")
	treatments := firstList(in.Summary.Treatment, in.Entities.Treatment)
	currentStatus := first(in.Summary.CurrentStatus, in.Entities.CurrentStatus, "")
	prognosis := first(in.Summary.Prognosis, in.Entities.Prognosis, "")

	sentiment := in.Sentiment.Sentiment
	if sentiment == "" {
		sentiment = model.SentimentNeutral
	}
	intent := in.Sentiment.Intent
	if intent == "" {
		intent = model.IntentReportingSymptoms
	}
	confidence := in.Sentiment.Confidence
	if confidence == 0 {
		confidence = 0.5
	}

	lower := strings.ToLower(in.Text)

	note := model.SOAPNote{
		Subjective: buildSubjective(patientName, symptoms, currentStatus, sentiment, intent),
		Objective:  buildObjective(lower, symptoms, currentStatus, treatments, sentiment, confidence),
		Assessment: buildAssessment(lower, symptoms, currentStatus, diagnosis, prognosis, confidence),
		Plan:       buildPlan(diagnosis, treatments, prognosis, sentiment, intent, lower, symptoms, currentStatus),
		Metadata: model.SOAPMetadata{
			TextLength:           len(in.Text),
			KeywordsExtracted:    len(in.Keywords),
			SymptomsIdentified:   len(symptoms),
			TreatmentsIdentified: len(treatments),
			AnalysisMethod:       first(in.Sentiment.Method, "", model.MethodRuleBased),
		},
	}
	return note
}

func buildSubjective(patientName string, symptoms []string, status string, sentiment model.Sentiment, intent model.Intent) model.SOAPSubjective {
	chief := ""
	if len(symptoms) > 0 {
		chief = "Patient reports " + strings.Join(top(symptoms, 3), ", ")
	}
	if chief == "" {
		chief = "Patient consultation - detailed history to be obtained"
	}

	var hpi []string
	hpi = append(hpi, "Chief complaint: "+chief)
	if len(symptoms) > 0 {
		hpi = append(hpi, "Symptoms reported: "+strings.Join(symptoms, ", "))
	}
	if status != "" {
		hpi = append(hpi, "Current status: "+status)
	}
	switch sentiment {
	case model.SentimentAnxious:
		hpi = append(hpi, "Patient appears anxious about condition")
	case model.SentimentReassured:
		hpi = append(hpi, "Patient appears reassured by discussion")
	}
	switch intent {
	case model.IntentSeekingReassurance:
		hpi = append(hpi, "Patient seeking reassurance about condition")
	case model.IntentExpressingConcern:
		hpi = append(hpi, "Patient expressing concerns about symptoms")
	}

	return model.SOAPSubjective{
		PatientName:             patientName,
		ChiefComplaint:          chief,
		HistoryOfPresentIllness: strings.Join(hpi, ". "),
		PatientSentiment:        string(sentiment),
		PatientIntent:           string(intent),
	}
}

func buildObjective(lower string, symptoms []string, status string, treatments []string, sentiment model.Sentiment, confidence float64) model.SOAPObjective {
	var exam []string
	if strings.Contains(lower, "pain") || anyContainsFold(symptoms, "pain") {
		exam = append(exam, "Patient reports pain in affected areas")
	}
	if strings.Contains(lower, "stiffness") || strings.Contains(lower, "stiff") {
		exam = append(exam, "Stiffness noted in affected areas")
	}
	if strings.Contains(lower, "swelling") || strings.Contains(lower, "swollen") {
		exam = append(exam, "Swelling may be present")
	}
	if strings.Contains(lower, "bruising") || strings.Contains(lower, "bruise") {
		exam = append(exam, "Bruising may be present")
	}
	if len(exam) == 0 {
		exam = append(exam, "Physical examination findings to be documented")
		if strings.Contains(lower, "whiplash") || strings.Contains(lower, "car accident") {
			exam = append(exam, "Cervical and lumbar spine range of motion to be assessed")
		}
	}

	var obs []string
	switch sentiment {
	case model.SentimentAnxious:
		obs = append(obs, "Patient appears anxious during consultation")
	case model.SentimentReassured:
		obs = append(obs, "Patient appears reassured and cooperative")
	}
	statusLower := strings.ToLower(status)
	if strings.Contains(statusLower, "improving") {
		obs = append(obs, "Patient reports improvement in condition")
	} else if strings.Contains(statusLower, "occasional") {
		obs = append(obs, "Patient reports occasional symptoms")
	}
	if len(obs) == 0 {
		obs = append(obs, "Patient cooperative during consultation")
	}
	if len(treatments) > 0 {
		obs = append(obs, "Patient has undergone: "+strings.Join(top(treatments, 3), ", "))
	}

	return model.SOAPObjective{
		PhysicalExam:         strings.Join(exam, ". "),
		Observations:         strings.Join(obs, ". "),
		VitalSigns:           "To be documented during physical examination",
		AssessmentConfidence: fmt.Sprintf("%.2f", confidence),
	}
}

func buildAssessment(lower string, symptoms []string, status, diagnosis, prognosis string, confidence float64) model.SOAPAssessment {
	if diagnosis == "" {
		diagnosis = "Diagnosis pending further evaluation"
	}

	joined := strings.ToLower(strings.Join(symptoms, " "))
	statusLower := strings.ToLower(status)
	var severity []string
	if strings.Contains(statusLower, "occasional") {
		severity = append(severity, "mild")
	}
	if strings.Contains(lower, "improving") || strings.Contains(statusLower, "improving") {
		severity = append(severity, "improving")
	}
	if strings.Contains(lower, "severe") || strings.Contains(joined, "severe") {
		severity = append(severity, "severe")
	}
	if strings.Contains(lower, "chronic") || strings.Contains(joined, "chronic") {
		severity = append(severity, "chronic")
	}
	severityText := "moderate"
	if len(severity) > 0 {
		severityText = strings.Join(severity, ", ")
	}

	var notes []string
	if prognosis != "" {
		notes = append(notes, "Prognosis: "+prognosis)
	}
	if confidence > 0.8 {
		notes = append(notes, "High confidence in assessment")
	} else if confidence < 0.5 {
		notes = append(notes, "Assessment based on limited information")
	}
	clinicalNotes := "Standard assessment completed"
	if len(notes) > 0 {
		clinicalNotes = strings.Join(notes, ". ")
	}

	if prognosis == "" {
		prognosis = "Prognosis to be determined"
	}
	return model.SOAPAssessment{
		Diagnosis:     diagnosis,
		Severity:      severityText,
		Prognosis:     prognosis,
		ClinicalNotes: clinicalNotes,
	}
}

func buildPlan(diagnosis string, treatments []string, prognosis string, sentiment model.Sentiment, intent model.Intent, lower string, symptoms []string, status string) model.SOAPPlan {
	plan := append([]string{}, treatments...)

	diagLower := strings.ToLower(diagnosis)
	if strings.Contains(diagLower, "whiplash") {
		if !anyContainsFold(plan, "physiotherapy") && !anyContainsFold(plan, "physio") {
			plan = append(plan, "Physiotherapy sessions recommended")
		}
		if !anyContainsFold(plan, "pain") {
			plan = append(plan, "Pain management as needed")
		}
	}
	if len(plan) == 0 {
		plan = append(plan, "Treatment plan to be determined based on assessment")
	}

	severity := severityTags(lower, symptoms, status)
	var followUp []string
	switch {
	case prognosis != "" && strings.Contains(prognosis, "months"):
		followUp = append(followUp, "Follow-up in 4-6 weeks to assess progress")
	case strings.Contains(severity, "improving"):
		followUp = append(followUp, "Follow-up in 2-4 weeks if symptoms persist")
	default:
		followUp = append(followUp, "Return if symptoms worsen or persist")
	}
	if sentiment == model.SentimentAnxious {
		followUp = append(followUp, "Patient education and reassurance provided")
	} else if intent == model.IntentSeekingReassurance {
		followUp = append(followUp, "Address patient concerns and provide reassurance")
	}

	return model.SOAPPlan{
		Treatment:        plan,
		FollowUp:         followUp,
		PatientEducation: "Patient education provided as appropriate",
		NextSteps:        "Continue current treatment plan and monitor progress",
	}
}

// severityTags rebuilds the assessment severity string for the follow-up
// ladder so Plan does not depend on Assessment's output ordering.
func severityTags(lower string, symptoms []string, status string) string {
	joined := strings.ToLower(strings.Join(symptoms, " "))
	statusLower := strings.ToLower(status)
	var tags []string
	if strings.Contains(statusLower, "occasional") {
		tags = append(tags, "mild")
	}
	if strings.Contains(lower, "improving") || strings.Contains(statusLower, "improving") {
		tags = append(tags, "improving")
	}
	if strings.Contains(lower, "severe") || strings.Contains(joined, "severe") {
		tags = append(tags, "severe")
	}
	if strings.Contains(lower, "chronic") || strings.Contains(joined, "chronic") {
		tags = append(tags, "chronic")
	}
	if len(tags) == 0 {
		return "moderate"
	}
	return strings.Join(tags, ", ")
}

func first(values ...string) string {
	for _, v := range values[:len(values)-1] {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return values[len(values)-1]
}

func firstList(primary, fallback []string) []string {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}

func top(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

func anyContainsFold(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), sub) {
			return true
		}
	}
	return false
}
