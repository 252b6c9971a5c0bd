// Package latex assembles the compiler-ready document source for a delivery
// note. Assembly is a pure text transform: all filesystem and subprocess work
// belongs to the pipeline and the compiler collaborator.
package latex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
)

// Placeholders for rows whose item carries no usable barcode.
const (
	noCodeText  = `\textit{--}`
	noImageText = `\textit{Non disponible}`
)

const preamble = `\documentclass[12pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[a4paper,margin=1.8cm]{geometry}
\usepackage{graphicx}
\usepackage{array}
\usepackage{longtable}
\usepackage{booktabs}
\usepackage{setspace}
\usepackage{helvet}
\renewcommand{\familydefault}{\sfdefault}
\newcommand{\checkbox}{\fbox{\rule{0pt}{1.5ex}\hspace{2.0ex}}}
\newcommand{\qtybox}{\fbox{\rule{0pt}{1.5ex}\hspace{3.5ex}}}
\renewcommand{\arraystretch}{1.3}
\setlength{\parskip}{0.6em}
\setlength{\parindent}{0pt}
\begin{document}
\begin{center}
\Large\textbf{Bon de livraison harmonisé}
\end{center}
`

// Assemble renders the grouped note and its asset map into LaTeX source.
// Header metadata lines appear only for present fields; each non-empty bucket
// becomes a titled section with one table row per item carrying the
// reconciliation checkboxes for the physical delivery check.
func Assemble(note *domain.Note, grouped domain.GroupedNote, assetMap domain.AssetMap) (string, error) {
	var sections []string
	for _, bucket := range grouped {
		sections = append(sections, section(bucket, assetMap))
	}
	if len(sections) == 0 {
		return "", &apperr.EmptyDocumentError{}
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(metadataBlock(note))
	b.WriteString("\\vspace{1em}\n")
	b.WriteString(strings.Join(sections, "\n\n"))
	b.WriteString("\n\\end{document}\n")
	return b.String(), nil
}

func metadataBlock(note *domain.Note) string {
	var b strings.Builder
	headerField := func(label, content string) {
		if content == "" {
			return
		}
		fmt.Fprintf(&b, `\textbf{%s}: %s\\`, Escape(label), Escape(content))
		b.WriteString("\n")
	}
	headerField("Fournisseur", note.Supplier)
	headerField("Référence", note.Reference)
	headerField("Date de livraison", note.DeliveryDate)
	return b.String()
}

func section(bucket domain.Bucket, assetMap domain.AssetMap) string {
	rows := make([]string, 0, len(bucket.Items))
	for _, item := range bucket.Items {
		rows = append(rows, row(item, assetMap))
	}

	lines := []string{
		fmt.Sprintf(`\section*{%s}`, Escape(title(bucket.Category.Label()))),
		`\begin{longtable}{p{6cm}p{1.5cm}p{2.4cm}p{3.0cm}p{1.6cm}p{2.2cm}}`,
		`\toprule`,
		`Article & Qté attendue & EAN13 & Code-barres & OK & Qté \\`,
		`\midrule`,
	}
	lines = append(lines, rows...)
	lines = append(lines, `\bottomrule`, `\end{longtable}`)
	return strings.Join(lines, "\n")
}

func row(item domain.Item, assetMap domain.AssetMap) string {
	eanText := noCodeText
	imageCell := noImageText
	if item.Barcode != "" {
		eanText = Escape(item.Barcode)
		if relPath, ok := assetMap[item.Barcode]; ok {
			imageCell = fmt.Sprintf(`\includegraphics[height=1.5cm]{%s}`, Escape(relPath))
		}
	}
	return fmt.Sprintf(`%s & %s & %s & %s & \checkbox & \qtybox \\`,
		Escape(item.Description), FormatQuantity(item.ExpectedQuantity), eanText, imageCell)
}

// FormatQuantity renders a quantity for display: integral values without a
// decimal point, fractional values with their exact fractional part.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// title upper-cases the first rune of a category label for the section
// heading, leaving the rest untouched.
func title(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}
