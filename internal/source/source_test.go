package source_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/angeloszaimis/availability-checker/internal/source"
)

var _ = Describe("Source", func() {
	var (
		ctx     context.Context
		tempDir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		tempDir = GinkgoT().TempDir()
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(tempDir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("ForPath", func() {
		DescribeTable("picks the loader from the extension",
			func(name string, expected source.Loader) {
				loader, err := source.ForPath(name, source.Options{Sheet: "Sites"})
				Expect(err).NotTo(HaveOccurred())
				Expect(loader).To(Equal(expected))
			},
			Entry("xlsx", "urls.xlsx", &source.ExcelLoader{Path: "urls.xlsx", Sheet: "Sites"}),
			Entry("upper-case xlsx", "URLS.XLSX", &source.ExcelLoader{Path: "URLS.XLSX", Sheet: "Sites"}),
			Entry("csv", "urls.csv", &source.CSVLoader{Path: "urls.csv", Comma: ','}),
			Entry("tsv", "urls.tsv", &source.CSVLoader{Path: "urls.tsv", Comma: '\t'}),
			Entry("html", "urls.html", &source.HTMLLoader{Path: "urls.html"}),
			Entry("txt", "urls.txt", &source.TextLoader{Path: "urls.txt"}),
		)

		It("should reject unknown extensions", func() {
			_, err := source.ForPath("urls.json", source.Options{})
			Expect(err).To(MatchError(source.ErrUnsupportedFormat))
		})
	})

	Describe("ExcelLoader", func() {
		saveWorkbook := func(build func(f *excelize.File)) string {
			f := excelize.NewFile()
			defer f.Close()
			build(f)
			path := filepath.Join(tempDir, "urls.xlsx")
			Expect(f.SaveAs(path)).To(Succeed())
			return path
		}

		It("should read the first column of the first sheet", func() {
			path := saveWorkbook(func(f *excelize.File) {
				Expect(f.SetCellValue("Sheet1", "A1", "URL")).To(Succeed())
				Expect(f.SetCellValue("Sheet1", "B1", "Owner")).To(Succeed())
				Expect(f.SetCellValue("Sheet1", "A2", "https://good.example")).To(Succeed())
				Expect(f.SetCellValue("Sheet1", "B3", "orphan")).To(Succeed())
				Expect(f.SetCellValue("Sheet1", "A4", "ftp://bad.example")).To(Succeed())
			})

			values, err := source.Load(ctx, path, source.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://good.example", "", "ftp://bad.example"}))
		})

		It("should read a named sheet", func() {
			path := saveWorkbook(func(f *excelize.File) {
				_, err := f.NewSheet("Sites")
				Expect(err).NotTo(HaveOccurred())
				Expect(f.SetCellValue("Sheet1", "A1", "ignored")).To(Succeed())
				Expect(f.SetCellValue("Sites", "A1", "URL")).To(Succeed())
				Expect(f.SetCellValue("Sites", "A2", "https://sites.example")).To(Succeed())
			})

			values, err := source.Load(ctx, path, source.Options{Sheet: "Sites"})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://sites.example"}))
		})

		It("should fail for a missing sheet", func() {
			path := saveWorkbook(func(f *excelize.File) {
				Expect(f.SetCellValue("Sheet1", "A1", "URL")).To(Succeed())
			})

			_, err := source.Load(ctx, path, source.Options{Sheet: "Nope"})
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a missing file", func() {
			_, err := source.Load(ctx, filepath.Join(tempDir, "missing.xlsx"), source.Options{})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing.xlsx"))
		})
	})

	Describe("CSVLoader", func() {
		It("should read the first field of every record", func() {
			path := writeFile("urls.csv", "\ufeffURL,Owner\nhttps://good.example,ops\n\"https://quoted.example\"\nftp://bad.example,dev,extra\n")

			values, err := source.Load(ctx, path, source.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://good.example", "https://quoted.example", "ftp://bad.example"}))
		})

		It("should split TSV on tabs", func() {
			path := writeFile("urls.tsv", "URL\tOwner\nhttps://good.example\tops\n")

			values, err := source.Load(ctx, path, source.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://good.example"}))
		})

		It("should fail for a missing file", func() {
			_, err := source.Load(ctx, filepath.Join(tempDir, "missing.csv"), source.Options{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("HTMLLoader", func() {
		It("should read the first cell of each row of the first table", func() {
			path := writeFile("urls.html", `<html><body>
<table>
  <thead><tr><th>URL</th><th>Owner</th></tr></thead>
  <tbody>
    <tr><td> <a href="#">https://good.example</a> </td><td>ops</td></tr>
    <tr><td></td><td>blank</td></tr>
    <tr><td>ftp://bad.example</td></tr>
  </tbody>
</table>
<table><tr><td>https://second-table.example</td></tr></table>
</body></html>`)

			values, err := source.Load(ctx, path, source.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://good.example", "", "ftp://bad.example"}))
		})

		It("should fail when there is no table", func() {
			path := writeFile("urls.htm", "<html><body><p>nothing</p></body></html>")

			_, err := source.Load(ctx, path, source.Options{})
			Expect(err).To(MatchError(ContainSubstring("no table")))
		})
	})

	Describe("TextLoader", func() {
		It("should return one value per line", func() {
			path := writeFile("urls.txt", "URL\nhttps://good.example\n\nftp://bad.example\n")

			values, err := source.Load(ctx, path, source.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal([]string{"URL", "https://good.example", "", "ftp://bad.example"}))
		})
	})

	It("should stop before reading when the context is cancelled", func() {
		path := writeFile("urls.txt", "URL\n")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := source.Load(cancelled, path, source.Options{})
		Expect(err).To(MatchError(context.Canceled))
	})
})
