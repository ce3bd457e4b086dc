package attack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/atomic-docgen/internal/attack"
)

var _ = Describe("FileSource", func() {
	It("should return the trimmed file content", func() {
		path := filepath.Join(GinkgoT().TempDir(), "desc.txt")
		Expect(os.WriteFile(path, []byte("  Adversaries may delete files.\n\n"), 0644)).To(Succeed())

		src := &attack.FileSource{Path: path}
		desc, err := src.Description(context.Background(), "T1070.004")
		Expect(err).ToNot(HaveOccurred())
		Expect(desc).To(Equal("Adversaries may delete files."))
	})

	It("should return an error for a missing file", func() {
		src := &attack.FileSource{Path: "no-such-file.txt"}
		_, err := src.Description(context.Background(), "T1070.004")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("MITRESource", func() {
	page := `<!DOCTYPE html>
<html>
<head><title>File Deletion, Technique T1070.004</title></head>
<body>
<main>
<article>
<h1>Indicator Removal: File Deletion</h1>
<p>Adversaries may delete files left behind by the actions of their
intrusion activity. Malware, tools, or other non-native files dropped or
created on a system by an adversary may leave traces to indicate to what
was done within a network and how.</p>
<p>Removal of these files can occur during an intrusion, or as part of a
post-intrusion process to minimize the adversary's footprint.</p>
</article>
</main>
</body>
</html>`

	It("should fetch and extract the technique description", func() {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(page))
		}))
		defer server.Close()

		src := attack.NewMITRESource(server.URL, 5*time.Second)
		desc, err := src.Description(context.Background(), "T1070.004")
		Expect(err).ToNot(HaveOccurred())
		Expect(requestedPath).To(Equal("/T1070.004/"))
		Expect(desc).To(ContainSubstring("Adversaries may delete files left behind"))
	})

	It("should return an error on a non-200 response", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		src := attack.NewMITRESource(server.URL, 5*time.Second)
		_, err := src.Description(context.Background(), "T9999")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("status 404"))
	})

	It("should return an error when the server is unreachable", func() {
		src := attack.NewMITRESource("http://127.0.0.1:1", 500*time.Millisecond)
		_, err := src.Description(context.Background(), "T9999")
		Expect(err).To(HaveOccurred())
	})

	It("should default the base URL to the MITRE site", func() {
		src := attack.NewMITRESource("", time.Second)
		Expect(src.BaseURL).To(Equal("https://attack.mitre.org/techniques"))
	})
})
