package summary_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/glucoguide/observations"
	observationsTest "github.com/tidepool-org/glucoguide/observations/test"
	"github.com/tidepool-org/glucoguide/summary"
)

type reportProfile struct {
	Username     string  `json:"username"`
	ControlLevel string  `json:"controlLevel"`
	MinGlucose   float64 `json:"minGlucose"`
	hidden       string
}

var _ = Describe("Report", func() {
	var averages summary.Averages

	BeforeEach(func() {
		averages = summary.CalculateAverages([]observations.Observation{
			observationsTest.NewObservation("2025-07-01", "5.0", "10", "1.0"),
			observationsTest.NewObservation("2025-07-01", "7.0", "20", "2.0"),
			observationsTest.NewObservation("2025-08-20", "9.0", "30", "3.0"),
		})
	})

	It("contains a profile sheet and a sheet per granularity", func() {
		profile := reportProfile{Username: "good", ControlLevel: "Standard", MinGlucose: 70, hidden: "x"}
		f, err := summary.NewReport("good", &profile, averages).Generate()
		Expect(err).ToNot(HaveOccurred())

		sheets, err := f.ToSlice()
		Expect(err).ToNot(HaveOccurred())
		Expect(sheets).To(HaveLen(4))
		Expect(f.Sheets[0].Name).To(Equal(summary.ReportSheetNameProfile))
		Expect(f.Sheets[1].Name).To(Equal("Daily"))
		Expect(f.Sheets[2].Name).To(Equal("Weekly"))
		Expect(f.Sheets[3].Name).To(Equal("Monthly"))

		Expect(sheets[0][0][0]).To(Equal("GLUCOGUIDE REPORT FOR GOOD"))
		Expect(sheets[0][2][:2]).To(Equal([]string{"username", "good"}))
		Expect(sheets[0][3][:2]).To(Equal([]string{"controlLevel", "Standard"}))
		Expect(sheets[0][4][:2]).To(Equal([]string{"minGlucose", "70"}))
		Expect(sheets[0]).To(HaveLen(5))
	})

	It("lists buckets in order", func() {
		f, err := summary.NewReport("good", nil, averages).Generate()
		Expect(err).ToNot(HaveOccurred())

		sheets, err := f.ToSlice()
		Expect(err).ToNot(HaveOccurred())

		daily := sheets[1]
		Expect(daily[0]).To(Equal([]string{"Period", "Blood Glucose (mmol/L)", "Carb Intake (g)", "Insulin (units)"}))
		Expect(daily[1]).To(Equal([]string{"2025-07-01", "6.0", "15.0", "1.5"}))
		Expect(daily[2]).To(Equal([]string{"2025-08-20", "9.0", "30.0", "3.0"}))

		weekly := sheets[2]
		Expect(weekly[1][0]).To(Equal("2025-W1"))
		Expect(weekly[2][0]).To(Equal("2025-W3"))

		monthly := sheets[3]
		Expect(monthly[1]).To(Equal([]string{"2025-07", "6.0", "15.0", "1.5"}))
		Expect(monthly[2]).To(Equal([]string{"2025-08", "9.0", "30.0", "3.0"}))
	})

	It("writes a readable workbook", func() {
		buf := bytes.Buffer{}
		Expect(summary.NewReport("good", nil, averages).Write(&buf)).To(Succeed())

		f, err := xlsx.OpenBinary(buf.Bytes())
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Sheets).To(HaveLen(4))
	})
})
