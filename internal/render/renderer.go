package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"invoice-builder/internal/core"
)

// Options adjusts document behavior without touching its data. It is part of
// the renderer's input: the same snapshot and options always produce the same
// bytes.
type Options struct {
	// AutoPrint embeds a load-time print trigger so the viewing context opens
	// straight into the host's print dialog.
	AutoPrint bool
}

type documentData struct {
	core.InvoiceSnapshot
	AutoPrint bool
}

// Render produces the complete, self-contained printable invoice document.
// Every user-supplied string passes through html/template's contextual
// escaping on insertion; multi-line fields convert newlines to <br> only
// after escaping. Trusted markup requires the distinct template.HTML type, so
// an unescaped insertion is a type error, not an oversight.
func Render(snap core.InvoiceSnapshot, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	data := documentData{InvoiceSnapshot: snap, AutoPrint: opts.AutoPrint}
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", snap.Meta.Number, err)
	}
	return buf.Bytes(), nil
}

// multiline escapes a text block, then turns its line breaks into <br> tags.
// Escaping happens first: user text can never become structural markup.
func multiline(s string) template.HTML {
	esc := template.HTMLEscapeString(s)
	esc = strings.ReplaceAll(esc, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(esc, "\n", "<br>"))
}

var documentTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money":     Money,
	"quantity":  Quantity,
	"multiline": multiline,
}).Parse(documentHTML))

const documentHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Invoice {{.Meta.Number}}</title>
<style>
  body{ font-family: Arial, sans-serif; color:#111; margin:24px; }
  .top{ display:flex; justify-content:space-between; gap:16px; }
  h1{ margin:0; font-size:22px; }
  .box{ border:1px solid #ddd; border-radius:10px; padding:12px; }
  .muted{ color:#666; font-size:12px; }
  table{ width:100%; border-collapse:collapse; margin-top:14px; }
  th,td{ border-bottom:1px solid #eee; padding:10px; vertical-align:top; }
  th{ background:#fafafa; text-align:left; font-size:13px; }
  .num{ text-align:right; white-space:nowrap; }
  .totals{ width:320px; margin-left:auto; margin-top:12px; }
  .totals div{ display:flex; justify-content:space-between; padding:6px 0; }
  .grand{ border-top:1px dashed #ddd; margin-top:6px; padding-top:10px; font-size:16px; }
  @media print { body{ margin:0; } .noPrint{ display:none; } }
</style>
</head>
<body>
  <div class="top">
    <div>
      <h1>INVOICE</h1>
      <div class="muted">
        No: <b>{{.Meta.Number}}</b><br>
        Date: <b>{{.Meta.Date}}</b>
        {{if .Meta.Tracking}}<br>Tracking: <b>{{.Meta.Tracking}}</b>{{end}}
      </div>
    </div>
    <div class="box" style="min-width:280px">
      <b>{{.Business.Name}}</b><br>
      {{multiline .Business.Address}}<br>
      {{.Business.Phone}}<br>
      {{.Business.Email}}
    </div>
  </div>

  <div class="box" style="margin-top:14px">
    <b>Bill To</b><br>
    {{.Customer.Name}}<br>
    {{multiline .Customer.Address}}<br>
    {{.Customer.Phone}}
  </div>

  <table>
    <thead>
      <tr><th>Description</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr>
    </thead>
    <tbody>
    {{- range .Items}}
      <tr>
        <td>{{.Description}}</td>
        <td class="num">{{quantity .Quantity}}</td>
        <td class="num">{{money .UnitPrice}}</td>
        <td class="num">{{money .LineTotal}}</td>
      </tr>
    {{- end}}
    </tbody>
  </table>

  <div class="totals">
    <div><span>Subtotal</span><b>{{money .Totals.Subtotal}}</b></div>
    <div><span>Tax ({{quantity .Totals.TaxRatePercent}}%)</span><b>{{money .Totals.TaxAmount}}</b></div>
    <div><span>Shipping</span><b>{{money .Totals.ShippingCharge}}</b></div>
    <div class="grand"><span>Total</span><b>{{money .Totals.GrandTotal}}</b></div>
  </div>

  {{if .PaymentNotes}}<div class="box" style="margin-top:14px">
    <b>Payment</b><br>{{multiline .PaymentNotes}}
  </div>{{end}}

  <p class="muted noPrint" style="margin-top:14px">
    You can close this tab once the PDF is saved.
  </p>
{{if .AutoPrint}}  <script>window.addEventListener("load", function () { window.print(); });</script>
{{end}}</body>
</html>
`
