package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Fingerprint derives a stable content identifier from a draft, used for
// review-time duplicate hinting. It hashes normalized header fields and the
// line set, so it is insensitive to header casing and whitespace but distinct
// from the raw-file checksum.
func Fingerprint(d *Draft) string {
	h := sha256.New()

	writeStr := func(s *string) {
		if s != nil {
			io.WriteString(h, canonField(*s))
		}
		io.WriteString(h, "\n")
	}
	writeStr(d.StationName)
	writeStr(d.StationStreetName)
	writeStr(d.StationPostalCode)
	writeStr(d.StationCity)

	if d.IssuedAt != nil {
		io.WriteString(h, d.IssuedAt.UTC().Format(time.RFC3339))
	}
	io.WriteString(h, "\n")
	io.WriteString(h, optInt64(d.TotalCents))
	io.WriteString(h, "\n")
	io.WriteString(h, optInt64(d.VATAmountCents))
	io.WriteString(h, "\n")

	for _, ln := range d.Lines {
		fuel := "-"
		if ln.FuelType != nil {
			fuel = string(*ln.FuelType)
		}
		rate := "-"
		if ln.VATRatePercent != nil {
			rate = strconv.Itoa(*ln.VATRatePercent)
		}
		fmt.Fprintf(h, "%s|%s|%s|%s|%s\n",
			fuel,
			optInt64(ln.QuantityMilliLiters),
			optInt64(ln.UnitPriceDeciCents),
			optInt64(ln.LineTotalCents),
			rate,
		)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func canonField(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func optInt64(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
