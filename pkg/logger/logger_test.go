package logger

import (
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestLogger(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Logger Suite")
}

var _ = ginkgo.Describe("Init", func() {
	ginkgo.It("should emit JSON when the format says so, whatever the env", func() {
		Init("development", "info", "json")

		_, ok := LoggerWrapper().Handler().(*slog.JSONHandler)
		gomega.Expect(ok).To(gomega.BeTrue())
	})

	ginkgo.It("should emit text when the format says so, even in production", func() {
		Init("production", "info", "text")

		_, ok := LoggerWrapper().Handler().(*slog.TextHandler)
		gomega.Expect(ok).To(gomega.BeTrue())
	})

	ginkgo.It("should fall back on the env when no format is configured", func() {
		Init("production", "info", "")

		_, ok := LoggerWrapper().Handler().(*slog.JSONHandler)
		gomega.Expect(ok).To(gomega.BeTrue())

		Init("development", "info", "")

		_, ok = LoggerWrapper().Handler().(*slog.TextHandler)
		gomega.Expect(ok).To(gomega.BeTrue())
	})
})
