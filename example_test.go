package cartazes_test

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	cartazes "github.com/LorhanBezerra/gerador-cartazes"
)

// Example runs a small batch: two rows, one template, one combined PDF.
// System fonts are skipped so the example behaves the same on every host.
func Example() {
	dir, err := os.MkdirTemp("", "cartazes-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	template := filepath.Join(dir, "modelo.png")
	if err := imaging.Save(imaging.New(600, 760, color.White), template); err != nil {
		fmt.Println("error:", err)
		return
	}

	f := excelize.NewFile()
	rows := [][]any{
		{"Código", "Descrição", "De", "Por", "Parcela", "Filial", "Defeito", "Tratativa", "Armazém"},
		{"1001", "CAMISA POLO", 89.9, 59.9, 5.99, "03", "", "", "A-1"},
		{"1002", "BERMUDA", 119.9, 79.9, 7.99, "03", "Costura", "OUTLET", "A-2"},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow("Sheet1", cell, &rows[i])
	}
	spreadsheet := filepath.Join(dir, "planilha.xlsx")
	if err := f.SaveAs(spreadsheet); err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = f.Close()

	svc := cartazes.New(cartazes.WithoutSystemFonts(), cartazes.WithCurrencyPrefix("R$ "))
	res, err := svc.Run(context.Background(), cartazes.Job{
		Spreadsheet: spreadsheet,
		Template:    template,
		OutputDir:   filepath.Join(dir, "cartazes_prontos"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, tag := range res.Tags {
		fmt.Println(filepath.Base(tag.Path))
	}
	fmt.Println(filepath.Base(res.Document))
	// Output:
	// cartaz_1001.png
	// cartaz_1002.png
	// cartazes_unificados.pdf
}

func ExampleFormatCurrency() {
	fmt.Println(cartazes.FormatCurrency(decimal.RequireFromString("1234.5")))
	fmt.Println(cartazes.FormatCurrency(decimal.NewFromInt(7)))
	fmt.Println(cartazes.FormatCurrency(decimal.RequireFromString("1999999.999")))
	// Output:
	// 1.234,50
	// 7,00
	// 2.000.000,00
}

func ExampleParsePageOrder() {
	order, err := cartazes.ParsePageOrder("rows")
	fmt.Println(order, err)

	_, err = cartazes.ParsePageOrder("numeric")
	fmt.Println(err != nil)
	// Output:
	// rows <nil>
	// true
}
