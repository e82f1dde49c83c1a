package ocr

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

func TestOCR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OCR Suite")
}

var _ = Describe("Client.Extract", func() {
	var (
		server     *ghttp.Server
		client     *Client
		filePath   string
		extraction Extraction
		err        error
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		filePath = filepath.Join(GinkgoT().TempDir(), "receipt.jpg")
		Expect(os.WriteFile(filePath, []byte("fake image bytes"), 0o600)).To(Succeed())
		client = NewClient(Config{
			BaseURL: server.URL(),
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
		}, nil, nil)
	})

	AfterEach(func() {
		server.Close()
	})

	extract := func() {
		extraction, err = client.Extract(context.Background(), filePath, "image/jpeg")
	}

	When("the provider answers with text", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/v1/extract"),
				ghttp.VerifyHeaderKV("Authorization", "Bearer test-key"),
				ghttp.VerifyContentType("application/json"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
					"text": "TOTAL 80,00",
				}),
			))
		})

		It("returns the extraction", func() {
			extract()
			Expect(err).NotTo(HaveOccurred())
			Expect(extraction.Text).To(Equal("TOTAL 80,00"))
		})
	})

	When("the provider answers with pages only", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
				"pages": []map[string]any{{"text": "page one"}, {"text": "page two"}},
			}))
		})

		It("joins the pages into the text", func() {
			extract()
			Expect(err).NotTo(HaveOccurred())
			Expect(extraction.Pages).To(Equal([]string{"page one", "page two"}))
			Expect(extraction.Text).To(Equal("page one\npage two"))
		})
	})

	When("the provider is rate limiting", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusTooManyRequests, "slow down"))
		})

		It("classifies the failure as retryable", func() {
			extract()
			Expect(IsRetryable(err)).To(BeTrue())
		})
	})

	When("the provider has an outage", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusBadGateway, ""))
		})

		It("classifies the failure as retryable", func() {
			extract()
			Expect(IsRetryable(err)).To(BeTrue())
		})
	})

	When("the provider rejects the document", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest, "unsupported"))
		})

		It("classifies the failure as permanent", func() {
			extract()
			Expect(IsPermanent(err)).To(BeTrue())
		})
	})

	When("the provider reports a processing error in the body", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{
				"error": map[string]any{"code": "BAD_DOCUMENT", "message": "cannot read"},
			}))
		})

		It("classifies the failure as permanent", func() {
			extract()
			Expect(IsPermanent(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("BAD_DOCUMENT"))
		})
	})

	When("the response body is not JSON", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "<html>gateway</html>"))
		})

		It("classifies the failure as retryable", func() {
			extract()
			Expect(IsRetryable(err)).To(BeTrue())
		})
	})

	When("the provider is unreachable", func() {
		It("classifies the failure as retryable", func() {
			server.Close()
			extract()
			Expect(IsRetryable(err)).To(BeTrue())
		})
	})

	When("no api key is configured", func() {
		BeforeEach(func() {
			client = NewClient(Config{BaseURL: server.URL()}, nil, nil)
		})

		It("fails permanently without calling the provider", func() {
			extract()
			Expect(IsPermanent(err)).To(BeTrue())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	When("the file does not exist", func() {
		BeforeEach(func() {
			filePath = filepath.Join(GinkgoT().TempDir(), "missing.jpg")
		})

		It("fails permanently", func() {
			extract()
			Expect(IsPermanent(err)).To(BeTrue())
		})
	})
})
