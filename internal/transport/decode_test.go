package transport

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dschabow91/maintrack/internal"
)

func TestTransport(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Transport Suite")
}

var _ = ginkgo.Describe("DecodeStrict", func() {
	var handler *BaseHandler

	ginkgo.BeforeEach(func() {
		handler = NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	type payload struct {
		Title *string `json:"title"`
	}

	ginkgo.It("should decode allow-listed fields", func() {
		req := httptest.NewRequest("PUT", "/", bytes.NewBufferString(`{"title":"new"}`))

		var dst payload
		appErr := handler.DecodeStrict(req, &dst)

		gomega.Expect(appErr).To(gomega.BeNil())
		gomega.Expect(*dst.Title).To(gomega.Equal("new"))
	})

	ginkgo.It("should reject unknown fields instead of dropping them", func() {
		req := httptest.NewRequest("PUT", "/", bytes.NewBufferString(`{"title":"new","ownerId":"hijack"}`))

		var dst payload
		appErr := handler.DecodeStrict(req, &dst)

		gomega.Expect(appErr).ToNot(gomega.BeNil())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeUnknownField))
	})

	ginkgo.It("should reject malformed JSON", func() {
		req := httptest.NewRequest("PUT", "/", bytes.NewBufferString(`{`))

		var dst payload
		appErr := handler.DecodeStrict(req, &dst)

		gomega.Expect(appErr).ToNot(gomega.BeNil())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
	})
})

var _ = ginkgo.Describe("ExtractTokenFromHeader", func() {
	handler := NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ginkgo.It("should extract a bearer token", func() {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		gomega.Expect(handler.ExtractTokenFromHeader(req)).To(gomega.Equal("abc.def.ghi"))
	})

	ginkgo.It("should return empty for a missing or malformed header", func() {
		req := httptest.NewRequest("GET", "/", nil)
		gomega.Expect(handler.ExtractTokenFromHeader(req)).To(gomega.BeEmpty())

		req.Header.Set("Authorization", "Basic dXNlcg==")
		gomega.Expect(handler.ExtractTokenFromHeader(req)).To(gomega.BeEmpty())
	})
})
