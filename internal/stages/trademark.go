package stages

import (
	"strings"

	"github.com/ukripo/sisindex/internal/biblio"
)

const (
	stageFilingDate     = "Встановлення дати подання"
	stoppedProsecution  = "Діловодство за заявкою припинено"
	markStatusStopped   = 8000
	trademarkStageCount = 6
)

var trademarkStageTitles = []string{
	"Торговельну марку зареєстровано",
	"Підготовка до державної реєстрації та публікації",
	"Кваліфікаційна експертиза",
	"Формальна експертиза",
	stageFilingDate,
	"Реєстрація первинних документів, попередня експертиза та введення відомостей до бази даних",
}

func trademarkStages(record *biblio.Record, details *biblio.TrademarkDetails) []*biblio.Stage {
	if len(details.Stages) > 0 {
		return trademarkNewSystemStages(record, details)
	}
	return trademarkLegacyStages(record)
}

func trademarkNewSystemStages(record *biblio.Record, details *biblio.TrademarkDetails) []*biblio.Stage {
	stages := details.Stages
	for _, stage := range stages {
		stage.Status = strings.ReplaceAll(stage.Status, ";", "")
	}

	if registered(record) {
		for _, stage := range stages {
			stage.Status = biblio.StageDone
		}
		return stages
	}

	// A published Code_441 proves the filing date was set even when the
	// export still shows that step current; examination moves on to the
	// formal stage.
	if details.Code441 != "" {
		for i := len(stages) - 1; i >= 0; i-- {
			if stages[i].Title != stageFilingDate {
				continue
			}
			if stages[i].Status == biblio.StageCurrent && len(stages) > 3 {
				stages[3].Status = biblio.StageCurrent
			}
			stages[i].Status = biblio.StageDone
		}
	}

	return newSystemFixup(stages, false, true)
}

func trademarkLegacyStages(record *biblio.Record) []*biblio.Stage {
	statusCode := trademarkStatusCode(record)
	stopped := statusCode == markStatusStopped ||
		(record.Document != nil && record.Document.RegistrationStatus == stoppedProsecution)

	statuses := make([]string, trademarkStageCount)
	if registered(record) {
		for i := range statuses {
			statuses[i] = biblio.StageDone
		}
	} else {
		for i := range statuses {
			statuses[i] = biblio.StageNotActive
		}

		// Legacy status codes advance in thousands: stage i is passed
		// once the code reaches (i+2)*1000.
		for i := range statuses {
			if statusCode >= (i+2)*1000 {
				statuses[i] = biblio.StageDone
				continue
			}
			if stopped {
				statuses[i] = biblio.StageNotActive
				if i > 1 {
					statuses[i-1] = biblio.StageStopped
				} else {
					statuses[i] = biblio.StageStopped
				}
			} else {
				statuses[i] = biblio.StageCurrent
			}
			break
		}

		if statusCode == markStatusStopped {
			statuses[5] = biblio.StageStopped
		}

		// A Т-08 form means the qualification examination is passed.
		if statuses[2] == biblio.StageDone && statuses[5] == biblio.StageNotActive {
			if hasDocForm(record, "Т-08") {
				statuses[4] = biblio.StageCurrent
				statuses[3] = biblio.StageDone
			}
		}

		// A Т-05 form means the formal examination is passed even when
		// the prosecution later stopped.
		if stopped && hasDocForm(record, "Т-05") {
			statuses[2] = biblio.StageDone
			statuses[3] = biblio.StageStopped
		}
	}

	stages := make([]*biblio.Stage, trademarkStageCount)
	for i, title := range trademarkStageTitles {
		// Titles run final-first; statuses run chronologically.
		stages[i] = &biblio.Stage{Title: title, Status: statuses[trademarkStageCount-1-i]}
	}
	return stages
}

// trademarkStatusCode reconciles the raw status code with the document
// forms present in the docflow, which prove later stages were reached.
func trademarkStatusCode(record *biblio.Record) int {
	code := 0
	if record.Document != nil {
		code = int(record.Document.MarkCurrentStatusCodeType)
	}
	for _, docType := range trademarkDocTypes(record) {
		if (strings.Contains(docType, "ТM-1.1") || strings.Contains(docType, "ТМ-1.1")) && code < 2000 {
			code = 3000
		}
		if (strings.Contains(docType, "Т-05") || strings.Contains(docType, "Т-5")) && code < 3000 {
			code = 3000
		}
		if strings.Contains(docType, "Т-08") && code < 4000 {
			code = 4000
		}
	}
	return code
}

func trademarkDocTypes(record *biblio.Record) []string {
	if record.TradeMark == nil || record.TradeMark.DocFlow == nil {
		return nil
	}
	var types []string
	for _, doc := range record.TradeMark.DocFlow.Documents {
		if doc.DocRecord != nil && doc.DocRecord.DocType != "" {
			types = append(types, doc.DocRecord.DocType)
		}
	}
	return types
}

func hasDocForm(record *biblio.Record, form string) bool {
	for _, docType := range trademarkDocTypes(record) {
		if strings.Contains(docType, form) {
			return true
		}
	}
	return false
}
