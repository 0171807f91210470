// Command reprography_pack renders every printable document of a dataset into a
// directory, for hand-off to reprography ahead of the exam.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/noah-isme/exam-logistics-api/internal/dataset"
	"github.com/noah-isme/exam-logistics-api/internal/models"
	"github.com/noah-isme/exam-logistics-api/internal/repository"
	"github.com/noah-isme/exam-logistics-api/internal/service"
	appErrors "github.com/noah-isme/exam-logistics-api/pkg/errors"
	"github.com/noah-isme/exam-logistics-api/pkg/export"
)

type artefact struct {
	Name     string
	Bytes    int
	Skipped  string
	Error    error
	Duration time.Duration
}

func main() {
	var (
		datasetID string
		outDir    string
		school    string
		strict    bool
	)

	flag.StringVar(&datasetID, "dataset", dataset.BacBlanc202512ID, "Builtin dataset id")
	flag.StringVar(&outDir, "out", "reprography", "Output directory")
	flag.StringVar(&school, "school", "", "School name printed on convocations")
	flag.BoolVar(&strict, "strict", false, "Exit non-zero when the dataset has authoring issues")
	flag.Parse()

	ctx := context.Background()
	datasets := service.NewDatasetService(repository.NewStaticDatasetRepository(), nil, nil, nil)
	ds, err := datasets.Get(ctx, datasetID)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}
	issues, err := datasets.Issues(ctx, datasetID)
	if err != nil {
		log.Fatalf("failed to validate dataset: %v", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", outDir, err)
	}

	convocations := service.NewConvocationService(school)
	pdf := export.NewPDFExporter()
	xlsx := export.NewXLSXExporter()

	steps := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"liste-emargement.pdf", func() ([]byte, error) {
			data, err := convocations.AttendanceList(*ds)
			if err != nil {
				return nil, err
			}
			return pdf.Render(data, service.AttendanceTitle())
		}},
		{"convocations-surveillants.pdf", func() ([]byte, error) {
			docs, err := convocations.AllTeacherConvocations(*ds)
			if err != nil {
				return nil, err
			}
			return pdf.RenderDocuments(docs)
		}},
		{"convocations-eleves.pdf", func() ([]byte, error) {
			students, err := convocations.AllStudents(*ds)
			if err != nil {
				return nil, err
			}
			return pdf.RenderDocuments(convocations.StudentDocuments(*ds, students))
		}},
		{"planning-surveillances.xlsx", func() ([]byte, error) {
			return teacherWorkbook(convocations, xlsx, *ds)
		}},
	}

	results := make([]artefact, 0, len(steps))
	for _, step := range steps {
		start := time.Now()
		res := artefact{Name: step.name}
		payload, err := step.render()
		switch {
		case appErrors.Is(err, appErrors.ErrNothingToExport):
			res.Skipped = appErrors.FromError(err).Message
		case err != nil:
			res.Error = err
		default:
			res.Bytes = len(payload)
			res.Error = os.WriteFile(filepath.Join(outDir, step.name), payload, 0o644)
		}
		res.Duration = time.Since(start)
		results = append(results, res)
	}

	failed := printReport(ds, issues, results)
	if failed > 0 || (strict && len(issues) > 0) {
		os.Exit(1)
	}
}

func teacherWorkbook(convocations *service.ConvocationService, xlsx *export.XLSXExporter, ds models.ExamDataset) ([]byte, error) {
	groups := service.TeacherGroups(ds)
	if len(groups) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNothingToExport, service.MsgNoInvigilator)
	}
	sheets := make([]export.Sheet, 0, len(groups)+1)
	all, err := convocations.TeacherScheduleTable(ds, "")
	if err != nil {
		return nil, err
	}
	sheets = append(sheets, export.Sheet{Name: "Tous", Data: all})
	for _, g := range groups {
		data, err := convocations.TeacherScheduleTable(ds, g.Teacher)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.Sheet{Name: g.Teacher, Data: data})
	}
	return xlsx.RenderSheets(sheets)
}

func printReport(ds *models.ExamDataset, issues []models.DatasetIssue, results []artefact) int {
	fmt.Printf("Reprography pack: %s\n", ds.Header.Title)
	fmt.Println("==================")
	for _, issue := range issues {
		fmt.Printf("[ISSUE] %s #%d %s: %s\n", issue.Scope, issue.Index, issue.Field, issue.Message)
	}
	failed := 0
	for _, res := range results {
		switch {
		case res.Error != nil:
			failed++
			fmt.Printf("[ERROR] %s: %v\n", res.Name, res.Error)
		case res.Skipped != "":
			fmt.Printf("[SKIP]  %s: %s\n", res.Name, res.Skipped)
		default:
			fmt.Printf("[OK]    %s (%d bytes, %s)\n", res.Name, res.Bytes, res.Duration.Round(time.Millisecond))
		}
	}
	fmt.Printf("Issues: %d, Failed documents: %d\n", len(issues), failed)
	return failed
}
