package stages

import (
	"strings"

	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/objtype"
)

// Document-type markers of the patent-family docflow. A bracketed form
// code inside the free-text document type encodes the prosecution event.
var (
	patentStopMarkers   = []string{"[В11]", "[В5]", "[В5а]", "[В5д]", "[В12]", "[В5б]", "[В16]", "[В10]"}
	patentResumeMarkers = []string{"[В21а]", "[В21б]", "[В21]", "[В22]"}
	filingDateMarkers   = []string{"[В1]", "[В4]", "[В9]"}
	formalExamMarkers   = []string{"[В6]", "[В7]", "[В8]"}
)

// Internal stage names of the patent office workflow.
const (
	wfFilingNational  = "Встановлення дати подання національної заявки"
	wfFilingNational2 = "Встановлення дати входження в національну фазу в Україні"
	wfFormalExam      = "Формальна експертиза заявок на винаходи і корисні моделі"
	wfQualExam        = "Кваліфікаційна експертиза"
	wfQualExamWait    = "Очікування клопотання та збору щодо КЕ"
	wfPrepRegistry    = "Підготовка заявки до реєстрації патенту"
	wfInForce         = "Підтримка чинності"
)

// Fee codes proving the state duty for registration was paid.
var dutyPaidCodes = []string{"19994", "19996"}

func patentStages(record *biblio.Record) []*biblio.Stage {
	docTypes := patentDocTypes(record)
	stopped := markersPresent(docTypes, patentStopMarkers)
	if stopped && markersPresent(docTypes, patentResumeMarkers) {
		stopped = false
	}

	doneStages := patentDoneStages(record, docTypes)
	clCodes := patentCollectionCodes(record)
	isRegistered := registered(record)

	done := func(names ...string) string {
		if isRegistered {
			return biblio.StageDone
		}
		for _, name := range names {
			if doneStages[name] {
				return biblio.StageDone
			}
		}
		return biblio.StageNotActive
	}
	dutyPaid := func() string {
		if isRegistered {
			return biblio.StageDone
		}
		for _, code := range dutyPaidCodes {
			if clCodes[code] {
				return biblio.StageDone
			}
		}
		return biblio.StageNotActive
	}

	stages := []*biblio.Stage{
		{Title: "Патент зареєстровано", Status: done(wfInForce)},
		{Title: "Підготовка до державної реєстрації та публікації", Status: done(wfPrepRegistry)},
		{Title: "Очікування документа про сплату державного мита", Status: dutyPaid()},
		{Title: "Кваліфікаційна експертиза", Status: done(wfQualExam)},
		{Title: "Очікування клопотання про проведення кваліфікаційної експертизи", Status: done(wfQualExamWait)},
		{Title: "Формальна експертиза", Status: done(wfFormalExam)},
		{Title: stageFilingDate, Status: done(wfFilingNational, wfFilingNational2)},
		{Title: "Реєстрація первинних документів, попередня експертиза та введення відомостей до бази даних", Status: biblio.StageDone},
	}

	// Utility models skip the qualification examination.
	if record.ObjType() == objtype.UtilityModel {
		stages[3].Status = biblio.StageNotUsed
		stages[4].Status = biblio.StageNotUsed
	}

	// The first passed stage from the top marks where examination stands.
	for i, stage := range stages {
		if stage.Status != biblio.StageDone {
			continue
		}
		if i != 0 {
			if stopped {
				if i == len(stages)-1 {
					// The intake stage is always passed; the stop lands
					// on the step before it.
					stages[i-1].Status = biblio.StageStopped
				} else {
					stages[i].Status = biblio.StageStopped
				}
			} else {
				stages[i-1].Status = biblio.StageCurrent
			}
		}
		break
	}

	return stages
}

// patentDocTypes lists document types of docflow entries that were
// actually registered, sent or barcoded.
func patentDocTypes(record *biblio.Record) []string {
	if record.DocFlowUpper == nil {
		return nil
	}
	var types []string
	for _, doc := range record.DocFlowUpper.Documents {
		rec := doc.DocRecord
		if rec == nil {
			continue
		}
		if rec.DocRegNumber == "" && rec.DocBarCode == "" && rec.DocSendingDate == "" {
			continue
		}
		types = append(types, rec.DocType)
	}
	return types
}

func markersPresent(docTypes, markers []string) bool {
	for _, marker := range markers {
		for _, docType := range docTypes {
			if strings.Contains(docType, marker) {
				return true
			}
		}
	}
	return false
}

// patentDoneStages collects passed workflow stages. The filing-date and
// formal-exam stages count as passed only when a matching outgoing form
// exists; any other stage counts once it has an end date.
func patentDoneStages(record *biblio.Record, docTypes []string) map[string]bool {
	done := map[string]bool{}
	if record.DocFlowUpper == nil {
		return done
	}
	for _, entry := range record.DocFlowUpper.Stages {
		if entry.StageRecord == nil {
			continue
		}
		name := entry.StageRecord.Stage
		switch name {
		case wfFilingNational:
			if markersPresent(docTypes, filingDateMarkers) {
				done[name] = true
			}
		case wfFormalExam:
			if markersPresent(docTypes, formalExamMarkers) {
				done[name] = true
			}
		default:
			if entry.StageRecord.EndDate != "" {
				done[name] = true
			}
		}
	}
	return done
}

func patentCollectionCodes(record *biblio.Record) map[string]bool {
	codes := map[string]bool{}
	if record.DocFlowUpper == nil {
		return codes
	}
	for _, entry := range record.DocFlowUpper.Collections {
		if entry.CLRecord != nil && entry.CLRecord.CLCode != "" {
			codes[entry.CLRecord.CLCode] = true
		}
	}
	return codes
}
