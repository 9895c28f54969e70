package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcs/internal/shear"
)

// Meta carries the document header fields of a calculation sheet
type Meta struct {
	Project string
	Author  string
	Title   string
}

func newSheet(meta Meta, defaultTitle string) *gofpdf.Fpdf {
	title := meta.Title
	if title == "" {
		title = defaultTitle
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	return pdf
}

func sheetSection(pdf *gofpdf.Fpdf, heading string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func sheetRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// CrushingPDF writes a one-page V_Rd,max calculation sheet
func CrushingPDF(r *shear.WebCrushingResult, meta Meta, path string) error {
	vUnit, lUnit := crushingUnits(r.Units)

	pdf := newSheet(meta, "Shear Resistance V_Rd,max - EN 1992-1-1")

	sheetSection(pdf, "Input Data")
	sheetRow(pdf, "Web width b_w", fmt.Sprintf("%.2f %s", r.Bw, lUnit))
	sheetRow(pdf, "Effective depth d", fmt.Sprintf("%.2f %s", r.D, lUnit))
	sheetRow(pdf, "f_ck", fmt.Sprintf("%.2f N/mm2", r.Fck))
	sheetRow(pdf, "f_yk", fmt.Sprintf("%.2f N/mm2", r.Fyk))
	sheetRow(pdf, "f_ywk", fmt.Sprintf("%.2f N/mm2", r.Fywk))
	sheetRow(pdf, "Strut angle theta", fmt.Sprintf("%.4f rad", r.Theta))
	sheetRow(pdf, "alpha_cw", fmt.Sprintf("%.2f", r.Alphacw))
	sheetRow(pdf, "gamma_c", fmt.Sprintf("%.2f", r.Gammac))
	pdf.Ln(4)

	sheetSection(pdf, "Intermediate Values")
	sheetRow(pdf, "Lever arm z = 0.9d", fmt.Sprintf("%.2f mm", r.Z))
	sheetRow(pdf, "f_cd = f_ck/gamma_c", fmt.Sprintf("%.3f N/mm2", r.Fcd))
	sheetRow(pdf, "nu_1", fmt.Sprintf("%.4f", r.Nu1))
	sheetRow(pdf, "tan theta / cot theta", fmt.Sprintf("%.4f / %.4f", r.TanTheta, r.CotTheta))
	pdf.Ln(4)

	sheetSection(pdf, "Result")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("V_Rd,max = %.2f %s", r.Value, vUnit))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, "V_Rd,max = alpha_cw * b_w * z * nu_1 * f_cd / (cot theta + tan theta)   [EN 1992-1-1 Eq. 6.9]", "", "L", false)

	return pdf.OutputFileAndClose(path)
}

// ConcretePDF writes a one-page V_Rd,c calculation sheet
func ConcretePDF(r *shear.ConcreteCapacityResult, meta Meta, path string) error {
	vUnit, lUnit := "N", "mm"
	if r.Units == shear.UnitsKNm {
		vUnit, lUnit = "kN", "m"
	}

	pdf := newSheet(meta, "Shear Resistance V_Rd,c - EN 1992-1-1")

	sheetSection(pdf, "Input Data")
	sheetRow(pdf, "C_Rd,c", fmt.Sprintf("%.4f", r.CRdc))
	sheetRow(pdf, "Tensile reinforcement A_sl", fmt.Sprintf("%.2f %s2", r.Asl, lUnit))
	sheetRow(pdf, "f_ck", fmt.Sprintf("%.2f N/mm2", r.Fck))
	sheetRow(pdf, "Axial stress sigma_cp", fmt.Sprintf("%.4f N/mm2", r.Sigmacp))
	sheetRow(pdf, "Web width b_w", fmt.Sprintf("%.2f %s", r.Bw, lUnit))
	sheetRow(pdf, "Effective depth d", fmt.Sprintf("%.2f %s", r.D, lUnit))
	pdf.Ln(4)

	sheetSection(pdf, "Intermediate Values")
	sheetRow(pdf, "rho_l (<= 0.02)", fmt.Sprintf("%.6f", r.RhoL))
	sheetRow(pdf, "k (<= 2.0)", fmt.Sprintf("%.4f", r.K))
	sheetRow(pdf, "v_min", fmt.Sprintf("%.4f N/mm2", r.Vmin))
	sheetRow(pdf, "k_1", fmt.Sprintf("%.2f", r.K1))
	sheetRow(pdf, "V_Rd,c1", fmt.Sprintf("%.2f N", r.VRdc1))
	sheetRow(pdf, "V_Rd,c2", fmt.Sprintf("%.2f N", r.VRdc2))
	pdf.Ln(4)

	sheetSection(pdf, "Result")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("V_Rd,c = max(V_Rd,c1, V_Rd,c2) = %.2f %s", r.Value, vUnit))
	pdf.Ln(10)

	return pdf.OutputFileAndClose(path)
}
