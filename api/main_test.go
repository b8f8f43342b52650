package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/tidepool-org/glucoguide/api"
	"github.com/tidepool-org/glucoguide/store"
	"github.com/tidepool-org/glucoguide/users"
)

func setenv(key, value string) {
	previous, ok := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if ok {
			Expect(os.Setenv(key, previous)).To(Succeed())
		} else {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})
}

var _ = Describe("Dependencies", func() {
	var app *fxtest.App
	var e *echo.Echo
	var st store.Store
	var service users.Service

	BeforeEach(func() {
		setenv("TIDEPOOL_STORE_BACKEND", store.BackendMemory)
		setenv("TIDEPOOL_HISTORY_SEED", "42")
		setenv("LOG_LEVEL", "error")

		options := append(api.Dependencies(),
			fx.NopLogger,
			fx.Invoke(api.SetReady),
			fx.Invoke(api.Bootstrap),
			fx.Populate(&e, &st, &service),
		)
		app = fxtest.New(GinkgoT(), options...)
		app.RequireStart()
	})

	AfterEach(func() {
		app.RequireStop()
	})

	It("seeds the demo users on start", func() {
		for _, username := range []string{"good", "bad", "average"} {
			Expect(service.GetUserByUsername(context.Background(), username)).ToNot(BeNil())

			blob, err := st.Get(context.Background(), "historicalData_"+username)
			Expect(err).ToNot(HaveOccurred())
			Expect(blob).ToNot(BeNil())
		}
	})

	It("is ready once started", func() {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
	})
})

var _ = Describe("HealthCheck", func() {
	It("isn't ready until set", func() {
		healthCheck := api.NewHealthCheck(store.NewMemoryStore(), nil)
		e := echo.New()
		e.GET("/ready", healthCheck.Ready)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
