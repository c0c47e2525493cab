// Package bai2fmt renders a parsed bai2.File as an indented, human
// readable tree. It is a display-only convenience: nothing in the core
// package depends on it, and round-tripping its output back into a
// bai2.File is not supported.
package bai2fmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/greenline-fi/bai2/internal/model"
)

// padWriter indents every line written to it by one level, the Go
// analog of a recursive struct-tree pretty-printer's indent adapter.
type padWriter struct {
	w        io.Writer
	pad      string
	atLineStart bool
}

func newPadWriter(w io.Writer, levels int) *padWriter {
	return &padWriter{w: w, pad: strings.Repeat("  ", levels), atLineStart: true}
}

func (p *padWriter) Write(b []byte) (int, error) {
	written := 0
	for len(b) > 0 {
		if p.atLineStart {
			if _, err := io.WriteString(p.w, p.pad); err != nil {
				return written, err
			}
		}
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			n, err := p.w.Write(b)
			written += n
			p.atLineStart = false
			return written, err
		}
		n, err := p.w.Write(b[:i+1])
		written += n
		if err != nil {
			return written, err
		}
		p.atLineStart = true
		b = b[i+1:]
	}
	return written, nil
}

// Fprint writes a fully indented rendering of f to w.
func Fprint(w io.Writer, f *model.File) error {
	_, err := fmt.Fprintf(w, "File: %s to %s at %s (%d) {\n", f.Sender, f.Receiver, f.Creation.Format("2006-01-02 15:04"), f.Ident)
	if err != nil {
		return err
	}
	pw := newPadWriter(w, 1)
	for _, g := range f.Groups {
		if err := fprintGroup(pw, g); err != nil {
			return err
		}
	}
	if len(f.Warnings) > 0 {
		if _, err := fmt.Fprintf(pw, "warnings: %d\n", len(f.Warnings)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "} (control_total=%d)\n", f.ControlTotal)
	return err
}

// Sprint renders f the way Fprint does, returning the result as a string.
func Sprint(f *model.File) string {
	var b strings.Builder
	_ = Fprint(&b, f)
	return b.String()
}

func fprintGroup(w io.Writer, g model.Group) error {
	_, err := fmt.Fprintf(w, "Group: status=%s as_of=%s {\n", g.Status, g.AsOf)
	if err != nil {
		return err
	}
	pw := newPadWriter(w, 1)
	for _, a := range g.Accounts {
		if err := fprintAccount(pw, a); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "} (control_total=%d)\n", g.ControlTotal)
	return err
}

func fprintAccount(w io.Writer, a model.Account) error {
	_, err := fmt.Fprintf(w, "Account %s {\n", a.CustomerAccount)
	if err != nil {
		return err
	}
	pw := newPadWriter(w, 1)
	for _, info := range a.Infos {
		if err := fprintAccountInfo(pw, info); err != nil {
			return err
		}
	}
	for _, td := range a.TransactionDetails {
		if err := fprintTransactionDetail(pw, td); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "} (control_total=%d)\n", a.ControlTotal)
	return err
}

func fprintAccountInfo(w io.Writer, info model.AccountInfo) error {
	switch v := info.(type) {
	case model.StatusInfo:
		if v.Amount != nil {
			_, err := fmt.Fprintf(w, "status %s amount=%d\n", v.Code, *v.Amount)
			return err
		}
		_, err := fmt.Fprintf(w, "status %s\n", v.Code)
		return err
	case model.SummaryInfo:
		_, err := fmt.Fprintf(w, "summary %s amount=%s items=%s funds=%s\n", v.Code, optUint64(v.Amount), optUint32(v.ItemCount), fundsString(v.Funds))
		return err
	default:
		_, err := fmt.Fprintf(w, "info %v\n", v)
		return err
	}
}

func fprintTransactionDetail(w io.Writer, td model.TransactionDetail) error {
	_, err := fmt.Fprintf(w, "detail %s amount=%s funds=%s bank_ref=%q customer_ref=%q\n",
		td.Code, optUint64(td.Amount), fundsString(td.Funds), td.BankRefNum, td.CustomerRefNum)
	return err
}

func fundsString(f model.FundsType) string {
	if f == nil {
		return "-"
	}
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return string(f.Letter())
}

func optUint64(v *uint64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func optUint32(v *uint32) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
