// Package stages derives the examination timeline shown next to every
// application: which steps are done, which is current and where the
// prosecution stopped. Each object type family has its own machine,
// driven by docflow markers or legacy status codes.
package stages

import (
	"sort"

	"go.uber.org/fx"

	"github.com/ukripo/sisindex/internal/biblio"
	"github.com/ukripo/sisindex/internal/objtype"
)

// Service derives and attaches examination timelines.
type Service struct{}

func New() *Service { return &Service{} }

// Derive builds the timeline for the record and attaches it in place.
// The search-data block must already be present; registration state
// drives the force-done rules.
func (s *Service) Derive(record *biblio.Record) {
	if record == nil {
		return
	}
	switch record.ObjType() {
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		record.Stages = patentStages(record)
	case objtype.TradeMark:
		if record.TradeMark != nil && record.TradeMark.TrademarkDetails != nil {
			details := record.TradeMark.TrademarkDetails
			details.Stages = trademarkStages(record, details)
		}
	case objtype.IndustrialDesign:
		if record.Design != nil && record.Design.DesignDetails != nil {
			details := record.Design.DesignDetails
			details.Stages = designStages(record, details)
		}
	case objtype.GeographicalOrigin:
		if record.Geo != nil && record.Geo.GeoDetails != nil {
			details := record.Geo.GeoDetails
			details.Stages = newSystemFixup(details.Stages, registered(record), false)
		}
	}
}

// SortTransactions orders the record's register notices by bulletin
// date, oldest first.
func (s *Service) SortTransactions(record *biblio.Record) {
	if record == nil {
		return
	}
	switch record.ObjType() {
	case objtype.Invention, objtype.UtilityModel, objtype.Topography:
		sort.SliceStable(record.FlatTransactions, func(i, j int) bool {
			return flatBulletinDate(record.FlatTransactions[i]) < flatBulletinDate(record.FlatTransactions[j])
		})
	case objtype.TradeMark:
		if record.TradeMark != nil {
			sortTransactions(record.TradeMark.Transactions)
		}
	case objtype.GeographicalOrigin:
		if record.Geo != nil {
			sortTransactions(record.Geo.Transactions)
		}
	case objtype.IndustrialDesign:
		if record.Design != nil {
			sortTransactions(record.Design.Transactions)
		}
	}
}

func sortTransactions(transactions *biblio.Transactions) {
	if transactions == nil {
		return
	}
	sort.SliceStable(transactions.Transaction, func(i, j int) bool {
		return bulletinDateOrEpoch(transactions.Transaction[i].BulletinDate) <
			bulletinDateOrEpoch(transactions.Transaction[j].BulletinDate)
	})
}

// ISO dates order lexicographically; missing dates sort first.
func bulletinDateOrEpoch(date string) string {
	if date == "" {
		return "1970-01-01"
	}
	return date
}

func flatBulletinDate(tx map[string]interface{}) string {
	if date, ok := tx["BULLETIN_DATE"].(string); ok {
		return bulletinDateOrEpoch(date)
	}
	return "1970-01-01"
}

func registered(record *biblio.Record) bool {
	return record.SearchData != nil && record.SearchData.ObjState == biblio.ObjStateRegistered
}

// newSystemFixup cleans a timeline exported by the new office system:
// for protective documents every step is done; for applications,
// duplicate "current" steps and steps marked done after the current one
// collapse to not-active. stoppedBreaks extends the collapse rule to
// stopped steps (trademarks only).
func newSystemFixup(stages []*biblio.Stage, done bool, stoppedBreaks bool) []*biblio.Stage {
	if done {
		for _, stage := range stages {
			stage.Status = biblio.StageDone
		}
		return stages
	}

	prev := ""
	// Walk from the chronologically first step (last element) upward.
	for i := len(stages) - 1; i >= 0; i-- {
		stage := stages[i]
		if shouldCollapse(stage.Status, prev, stoppedBreaks) {
			stage.Status = biblio.StageNotActive
		}
		prev = stage.Status
	}
	return stages
}

func shouldCollapse(status, prev string, stoppedBreaks bool) bool {
	if status == biblio.StageCurrent && prev == biblio.StageCurrent {
		return true
	}
	active := status == biblio.StageDone || status == biblio.StageCurrent || status == biblio.StageStopped
	if !active {
		return false
	}
	if prev == biblio.StageCurrent || prev == biblio.StageNotActive {
		return true
	}
	return stoppedBreaks && prev == biblio.StageStopped
}

// Module wires the stage derivation service.
var Module = fx.Module("stages",
	fx.Provide(New),
)
