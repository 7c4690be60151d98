// Package pix builds BR Code ("copia e cola") payment payloads: an
// EMV-style tag-length-value string terminated by a CRC-16 trailer that
// any Brazilian banking app can scan and resolve to the merchant's PIX
// key. Encoding is pure; the current time is an explicit input.
package pix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingPixKey = errors.New("merchant has no pix key")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

const (
	tagPayloadFormat   = "00"
	tagMerchantAccount = "26"
	tagCategoryCode    = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountryCode     = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagMerchantAddress = "61"
	tagAdditionalData  = "62"

	// Nested under tagMerchantAccount.
	tagGUI    = "00"
	tagPixKey = "01"
	// Nested under tagAdditionalData.
	tagTxID = "05"

	pixGUI       = "BR.GOV.BCB.PIX"
	categoryNone = "0000"
	currencyBRL  = "986"
	countryBR    = "BR"

	// Tag+length of the CRC field, appended before the checksum is known.
	crcPrefix = "6304"

	maxNameLen = 25

	codeTTL = 10 * time.Minute
)

// MerchantProfile identifies the receiving merchant.
type MerchantProfile struct {
	PixKey      string
	DisplayName string
	AddressLine string
	StateCode   string
}

// TransactionRequest is the per-code transaction data. ReferenceCode is
// the short identifier shown on the payer's statement.
type TransactionRequest struct {
	Amount        float64
	ReferenceCode string
}

// GeneratedCode is ephemeral: a new call yields a new payload and expiry.
type GeneratedCode struct {
	Payload   string
	ExpiresAt int64
}

// BuildCode encodes the payment payload for the given merchant and
// transaction. now must be the caller's current UTC time; the expiry is
// now plus ten minutes, as epoch seconds.
func BuildCode(profile MerchantProfile, req TransactionRequest, now time.Time) (GeneratedCode, error) {
	if profile.PixKey == "" {
		return GeneratedCode{}, ErrMissingPixKey
	}
	if req.Amount < 0 {
		return GeneratedCode{}, ErrInvalidAmount
	}

	merchantAccount := field(tagGUI, pixGUI) + field(tagPixKey, profile.PixKey)

	name := profile.DisplayName
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}

	var b strings.Builder
	b.WriteString(field(tagPayloadFormat, "01"))
	b.WriteString(field(tagMerchantAccount, merchantAccount))
	b.WriteString(field(tagCategoryCode, categoryNone))
	b.WriteString(field(tagCurrency, currencyBRL))
	b.WriteString(field(tagAmount, strconv.FormatFloat(req.Amount, 'f', 2, 64)))
	b.WriteString(field(tagCountryCode, countryBR))
	b.WriteString(field(tagMerchantName, strings.ToUpper(name)))
	b.WriteString(field(tagMerchantCity, strings.ToUpper(profile.StateCode)))
	b.WriteString(field(tagMerchantAddress, strings.ToUpper(profile.AddressLine)))
	b.WriteString(field(tagAdditionalData, field(tagTxID, req.ReferenceCode)))
	b.WriteString(crcPrefix)

	payload := b.String()
	payload += fmt.Sprintf("%04X", crc16(payload))

	return GeneratedCode{
		Payload:   payload,
		ExpiresAt: now.Add(codeTTL).Unix(),
	}, nil
}

// field renders one TLV field: 2-digit tag, 2-digit zero-padded byte
// length, raw value.
func field(tag, value string) string {
	return tag + fmt.Sprintf("%02d", len(value)) + value
}
