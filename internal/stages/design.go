package stages

import (
	"strings"

	"github.com/ukripo/sisindex/internal/biblio"
)

var designStageTitles = []string{
	"Промисловий зразок зареєстровано",
	"Підготовка до державної реєстрації та публікації",
	"Експертиза заявки",
	stageFilingDate,
	"Реєстрація первинних документів, попередня експертиза та введення відомостей до бази даних",
}

// Legacy design status codes, one threshold per stage.
var designStatusMarks = []int{2000, 4000, 5000, 5002, 6000}

func designStages(record *biblio.Record, details *biblio.DesignDetails) []*biblio.Stage {
	if len(details.Stages) > 0 {
		for _, stage := range details.Stages {
			stage.Status = strings.ReplaceAll(stage.Status, ";", "")
		}
		return newSystemFixup(details.Stages, registered(record), false)
	}
	return designLegacyStages(record)
}

func designLegacyStages(record *biblio.Record) []*biblio.Stage {
	count := len(designStatusMarks)
	statuses := make([]string, count)

	if registered(record) {
		for i := range statuses {
			statuses[i] = biblio.StageDone
		}
	} else {
		statusCode := 0
		stopped := false
		if record.Document != nil {
			statusCode = int(record.Document.DesignCurrentStatusCodeType)
			stopped = record.Document.RegistrationStatus == stoppedProsecution
		}

		for i := range statuses {
			statuses[i] = biblio.StageNotActive
		}
		for i := range statuses {
			if statusCode >= designStatusMarks[i] {
				statuses[i] = biblio.StageDone
				continue
			}
			if stopped {
				statuses[i] = biblio.StageNotActive
				if i > 0 {
					statuses[i-1] = biblio.StageStopped
				}
			} else {
				statuses[i] = biblio.StageCurrent
			}
			break
		}
	}

	stages := make([]*biblio.Stage, count)
	for i, title := range designStageTitles {
		stages[i] = &biblio.Stage{Title: title, Status: statuses[count-1-i]}
	}
	return stages
}
