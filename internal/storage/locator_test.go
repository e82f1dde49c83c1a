package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestStorage(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Storage Suite")
}

var _ = Describe("FSLocator", func() {
	var (
		root    string
		locator *FSLocator
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		Expect(os.MkdirAll(filepath.Join(root, "2026"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "2026", "receipt.jpg"), []byte("x"), 0o600)).To(Succeed())
		locator = NewFSLocator(map[string]string{"uploads": root}, nil)
	})

	It("resolves a stored file to its local path", func() {
		path, err := locator.Locate(context.Background(), "uploads", "2026/receipt.jpg")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(root, "2026", "receipt.jpg")))
	})

	It("rejects unknown storage names", func() {
		_, err := locator.Locate(context.Background(), "other", "2026/receipt.jpg")
		Expect(err).To(MatchError(ErrUnknownStorage))
	})

	It("rejects paths that escape the root", func() {
		_, err := locator.Locate(context.Background(), "uploads", "../../etc/passwd")
		Expect(err).To(HaveOccurred())
	})

	It("rejects missing files", func() {
		_, err := locator.Locate(context.Background(), "uploads", "2026/nope.jpg")
		Expect(err).To(HaveOccurred())
	})

	It("rejects directories", func() {
		_, err := locator.Locate(context.Background(), "uploads", "2026")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Composite", func() {
	It("dispatches by storage name", func() {
		root := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(root, "a.pdf"), []byte("x"), 0o600)).To(Succeed())

		c := NewComposite()
		c.Register("uploads", NewFSLocator(map[string]string{"uploads": root}, nil))

		path, err := c.Locate(context.Background(), "uploads", "a.pdf")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(root, "a.pdf")))

		_, err = c.Locate(context.Background(), "unknown", "a.pdf")
		Expect(err).To(MatchError(ErrUnknownStorage))
	})
})
