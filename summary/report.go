package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/structs"
	"github.com/tealeg/xlsx/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ReportSheetNameProfile = "Profile"
	reportBucketHeader     = "Period"
)

// Report renders a profile and its averages as a workbook with one sheet for
// the profile and one per granularity.
type Report struct {
	username string
	profile  any
	averages Averages
}

// NewReport expects profile to be a struct or a pointer to one. Fields are
// labelled with the name of their json tag.
func NewReport(username string, profile any, averages Averages) Report {
	return Report{
		username: username,
		profile:  profile,
		averages: averages,
	}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addProfileSheet,
		r.addAveragesSheets,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) Write(w io.Writer) error {
	report, err := r.Generate()
	if err != nil {
		return err
	}
	return report.Write(w)
}

func (r Report) addProfileSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameProfile)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue(fmt.Sprintf("GLUCOGUIDE REPORT FOR %s", strings.ToUpper(r.username)))
	sh.AddRow()

	if r.profile == nil || !structs.IsStruct(r.profile) {
		return nil
	}

	for _, field := range structs.Fields(r.profile) {
		if !field.IsExported() {
			continue
		}
		name := field.Name()
		if tag := strings.Split(field.Tag("json"), ",")[0]; tag != "" && tag != "-" {
			name = tag
		}
		row := sh.AddRow()
		row.AddCell().SetValue(name)
		row.AddCell().SetValue(fmt.Sprint(field.Value()))
	}

	return nil
}

func (r Report) addAveragesSheets(report *xlsx.File) error {
	title := cases.Title(language.English)
	for _, granularity := range Granularities {
		buckets, _ := r.averages.ByGranularity(granularity)
		sh, err := report.AddSheet(title.String(granularity))
		if err != nil {
			return err
		}
		addAverages(sh, buckets)
	}
	return nil
}

func addAverages(sh *xlsx.Sheet, buckets *Buckets) {
	header := sh.AddRow()
	header.AddCell().SetValue(reportBucketHeader)
	for _, field := range structs.Fields(Average{}) {
		header.AddCell().SetValue(field.Tag("structs"))
	}

	if buckets == nil {
		return
	}

	buckets.Each(func(key string, average Average) {
		row := sh.AddRow()
		row.AddCell().SetValue(key)
		for _, value := range structs.Values(average) {
			row.AddCell().SetValue(value)
		}
	})
}
