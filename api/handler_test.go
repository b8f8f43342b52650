package api_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/zap"

	"github.com/tidepool-org/glucoguide/api"
	"github.com/tidepool-org/glucoguide/observations"
	"github.com/tidepool-org/glucoguide/readings"
	"github.com/tidepool-org/glucoguide/store"
	"github.com/tidepool-org/glucoguide/test"
	"github.com/tidepool-org/glucoguide/users"
)

var _ = Describe("Handler", func() {
	var st store.Store
	var service users.Service
	var e *echo.Echo

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		logger := zap.NewNop()
		st = store.NewMemoryStore()
		history := observations.NewStoreRepository(st, logger.Sugar())
		generator, err := observations.NewGenerator(history, &observations.Config{
			Start: "2025-06-25",
			End:   "2025-09-23",
			Seed:  test.Seed(),
		}, logger.Sugar())
		Expect(err).ToNot(HaveOccurred())

		service = users.NewService(users.Params{
			Repository: users.NewRepository(st, logger.Sugar()),
			History:    history,
			Generator:  generator,
			Logger:     logger.Sugar(),
		})
		service.InitializeDatabase(context.Background())

		handler := api.NewHandler(api.Params{
			Users:     service,
			Simulator: readings.NewSimulatorWithSource(rand.NewSource(test.Seed()), time.Now),
			Logger:    logger.Sugar(),
		})
		healthCheck := api.NewHealthCheck(st, logger.Sugar())
		healthCheck.SetReady(true)
		e, err = api.NewServer(handler, healthCheck, logger, logger.Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Login", func() {
		It("returns the profile of a known user", func() {
			rec := serve(http.MethodPost, "/v1/login", `{"username": "good"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"username": "good",
				"controlLevel": "Standard",
				"minGlucose": 70,
				"maxGlucose": 180,
				"carbRatio": 10,
				"correctionFactor": 50
			}`))
		})

		It("requires a username", func() {
			rec := serve(http.MethodPost, "/v1/login", `{"username": ""}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects an unknown username", func() {
			rec := serve(http.MethodPost, "/v1/login", `{"username": "GOOD"}`)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(ContainSubstring("invalid username"))
		})
	})

	Describe("Users", func() {
		It("gets a user", func() {
			rec := serve(http.MethodGet, "/v1/users/bad", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			profile := users.Profile{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &profile)).To(Succeed())
			Expect(profile.ControlLevel).To(Equal("Advanced"))
		})

		It("returns not found for an unknown user", func() {
			rec := serve(http.MethodGet, "/v1/users/nobody", "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("replaces a user", func() {
			rec := serve(http.MethodPut, "/v1/users/average", `{
				"controlLevel": "Advanced",
				"minGlucose": 60,
				"maxGlucose": 170,
				"carbRatio": 9,
				"correctionFactor": 45
			}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"updated": true}`))

			profile := service.GetUserByUsername(context.Background(), "average")
			Expect(profile).ToNot(BeNil())
			Expect(profile.MaxGlucose).To(Equal(170.0))
			Expect(profile.ControlLevel).To(Equal("Advanced"))
		})

		It("patches a user", func() {
			rec := serve(http.MethodPatch, "/v1/users/good", `{"carbRatio": 12}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			profile := users.Profile{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &profile)).To(Succeed())
			Expect(profile.CarbRatio).To(Equal(12.0))
			Expect(profile.MinGlucose).To(Equal(70.0))
		})

		It("rejects an invalid patch", func() {
			rec := serve(http.MethodPatch, "/v1/users/good", `{"carbRatio": "twelve"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns not found when patching an unknown user", func() {
			rec := serve(http.MethodPatch, "/v1/users/nobody", `{"carbRatio": 12}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("imports users from a csv file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "users.csv")
			content := "username,controlLevel,minGlucose,maxGlucose,carbRatio,correctionFactor\n" +
				"jane, Standard, 70, 180, 10, 50\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

			body, err := json.Marshal(api.ImportUsersRequest{Path: path})
			Expect(err).ToNot(HaveOccurred())
			rec := serve(http.MethodPost, "/v1/users/import", string(body))
			Expect(rec.Code).To(Equal(http.StatusAccepted))
			Expect(rec.Body.String()).To(MatchJSON(`{"imported": 1}`))

			Expect(serve(http.MethodGet, "/v1/users/jane", "").Code).To(Equal(http.StatusOK))
			Expect(serve(http.MethodGet, "/v1/users/good", "").Code).To(Equal(http.StatusNotFound))
		})

		It("requires an import path", func() {
			rec := serve(http.MethodPost, "/v1/users/import", `{}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a blank import path", func() {
			rec := serve(http.MethodPost, "/v1/users/import", `{"path": "   "}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a profile with missing fields", func() {
			rec := serve(http.MethodPut, "/v1/users/average", `{"controlLevel": "Advanced"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			profile := service.GetUserByUsername(context.Background(), "average")
			Expect(profile).ToNot(BeNil())
			Expect(profile.ControlLevel).To(Equal("Standard"))
		})
	})

	Describe("History", func() {
		It("returns the observations of the user", func() {
			rec := serve(http.MethodGet, "/v1/users/good/history", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			history := make([]observations.Observation, 0)
			Expect(json.Unmarshal(rec.Body.Bytes(), &history)).To(Succeed())
			Expect(len(history)).To(BeNumerically(">=", 91*4))
			Expect(history[0].Date).To(Equal("2025-06-25"))
		})

		It("returns all averages", func() {
			rec := serve(http.MethodGet, "/v1/users/good/averages", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			averages := map[string]map[string]map[string]string{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &averages)).To(Succeed())
			Expect(averages).To(HaveKey("daily"))
			Expect(averages).To(HaveKey("weekly"))
			Expect(averages["monthly"]).To(HaveLen(4))
			Expect(averages["monthly"]).To(HaveKey("2025-07"))
			Expect(averages["daily"]["2025-07-01"]).To(HaveKey("bloodGlucose"))
		})

		It("keeps the buckets in order", func() {
			rec := serve(http.MethodGet, "/v1/users/good/averages?granularity=monthly", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := rec.Body.String()
			Expect(strings.Index(body, `"2025-06"`)).To(BeNumerically("<", strings.Index(body, `"2025-07"`)))
			Expect(strings.Index(body, `"2025-07"`)).To(BeNumerically("<", strings.Index(body, `"2025-08"`)))
			Expect(strings.Index(body, `"2025-08"`)).To(BeNumerically("<", strings.Index(body, `"2025-09"`)))
		})

		It("rejects an unknown granularity", func() {
			rec := serve(http.MethodGet, "/v1/users/good/averages?granularity=hourly", "")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns not found for an unknown user", func() {
			Expect(serve(http.MethodGet, "/v1/users/nobody/history", "").Code).To(Equal(http.StatusNotFound))
			Expect(serve(http.MethodGet, "/v1/users/nobody/averages", "").Code).To(Equal(http.StatusNotFound))
		})

		It("downloads a report", func() {
			rec := serve(http.MethodGet, "/v1/users/bad/averages/report", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get(echo.HeaderContentDisposition)).To(ContainSubstring("bad-averages.xlsx"))

			f, err := xlsx.OpenBinary(rec.Body.Bytes())
			Expect(err).ToNot(HaveOccurred())
			Expect(f.Sheets).To(HaveLen(4))
		})
	})

	Describe("Readings", func() {
		It("simulates the current glucose within the range of the user", func() {
			rec := serve(http.MethodGet, "/v1/users/bad/glucose", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			reading := readings.Reading{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &reading)).To(Succeed())
			Expect(reading.Username).To(Equal("bad"))
			Expect(reading.Value).To(BeNumerically(">=", 60))
			Expect(reading.Value).To(BeNumerically("<=", 200))
		})

		It("lists foods", func() {
			rec := serve(http.MethodGet, "/v1/foods", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`[
				{"name": "Porridge", "carbs": 30},
				{"name": "Haggis", "carbs": 20},
				{"name": "Shortbread", "carbs": 15}
			]`))
		})

		It("estimates insulin", func() {
			rec := serve(http.MethodGet, "/v1/insulin?carbs=30", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"carbs": 30, "units": 3}`))
		})

		It("estimates zero units without carbs", func() {
			rec := serve(http.MethodGet, "/v1/insulin", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"carbs": 0, "units": 0}`))
		})

		DescribeTable("rejects invalid carbs",
			func(carbs string) {
				rec := serve(http.MethodGet, "/v1/insulin?carbs="+carbs, "")
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("negative", "-5"),
			Entry("not a number", "NaN"),
			Entry("infinite", "Inf"),
			Entry("text", "lots"),
		)
	})

	Describe("Readiness and metrics", func() {
		It("reports readiness", func() {
			Expect(serve(http.MethodGet, "/ready", "").Code).To(Equal(http.StatusOK))
		})

		It("exposes metrics", func() {
			rec := serve(http.MethodGet, "/metrics", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("glucoguide_histories_generated_total"))
		})
	})
})
