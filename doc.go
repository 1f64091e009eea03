// Package cartazes renders retail price tags ("cartazes") from a spreadsheet
// onto a template image and merges them into one printable PDF.
//
// # Quick Start
//
// Run a whole batch with a Service:
//
//	svc := cartazes.New(
//	    cartazes.WithOnError(cartazes.Skip),
//	    cartazes.WithCurrencyPrefix("R$ "),
//	)
//
//	res, err := svc.Run(ctx, cartazes.Job{
//	    Spreadsheet: "produtos.xlsx",
//	    Template:    "modelo.png",
//	    OutputDir:   "cartazes_prontos",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Empty() {
//	    fmt.Println("nothing to do")
//	}
//	fmt.Println(res.Document) // cartazes_prontos/cartazes_unificados.pdf
//
// # Pipeline
//
// A batch runs these stages in order:
//
//  1. Font resolution (operator files and directories, then system fonts,
//     then a built-in bitmap face)
//  2. Template decoding (alpha dropped)
//  3. Spreadsheet reading and row validation
//  4. One cartaz_<code>.png per row, written atomically
//  5. cartazes_unificados.pdf, one page per tag
//  6. cartazes_individuais.zip when WithArchive(true) is set
//
// The Renderer and Collator behind stages 2 to 5 are also usable on their
// own through NewRenderer and NewCollator.
//
// # Spreadsheet
//
// The first worksheet is read. Row 1 is a header. Every other non-blank row
// holds, in order: code, description, price_from, price_to,
// installment_price, branch, defect_note, treatment_note, warehouse. Price
// cells must be numbers.
//
// # Malformed Rows
//
// By default (Abort) the first malformed row fails the batch before any tag
// is written, with an error wrapping ErrMalformedRow and the row's cause.
// With Skip, malformed rows are returned in JobResult.Failures and the rest
// is rendered.
//
// # Page Order
//
// Pages follow tag file names (OrderFilename), so cartaz_10.png comes before
// cartaz_2.png. Use WithPageOrder(OrderRows) to keep spreadsheet order.
package cartazes
