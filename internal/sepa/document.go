// Package sepa serializes a finalized payment batch as a pain.001.001.03
// customer credit transfer initiation document.
package sepa

import "encoding/xml"

const namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Document is the root of a pain.001.001.03 message.
type Document struct {
	XMLName          xml.Name         `xml:"Document"`
	Xmlns            string           `xml:"xmlns,attr"`
	CstmrCdtTrfInitn CstmrCdtTrfInitn `xml:"CstmrCdtTrfInitn"`
}

// CstmrCdtTrfInitn holds the group header and the single payment
// instruction block (one payer per file).
type CstmrCdtTrfInitn struct {
	GrpHdr GrpHdr `xml:"GrpHdr"`
	PmtInf PmtInf `xml:"PmtInf"`
}

// GrpHdr is the message-level header.
type GrpHdr struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  int    `xml:"NbOfTxs"`
	CtrlSum  string `xml:"CtrlSum"`
	InitgPty Party  `xml:"InitgPty"`
}

// PmtInf is the payment instruction block shared by all transfers.
type PmtInf struct {
	PmtInfID    string        `xml:"PmtInfId"`
	PmtMtd      string        `xml:"PmtMtd"`
	BtchBookg   bool          `xml:"BtchBookg"`
	NbOfTxs     int           `xml:"NbOfTxs"`
	CtrlSum     string        `xml:"CtrlSum"`
	PmtTpInf    PmtTpInf      `xml:"PmtTpInf"`
	ReqdExctnDt string        `xml:"ReqdExctnDt"`
	Dbtr        Party         `xml:"Dbtr"`
	DbtrAcct    CashAccount   `xml:"DbtrAcct"`
	DbtrAgt     *Agent        `xml:"DbtrAgt,omitempty"`
	ChrgBr      string        `xml:"ChrgBr"`
	CdtTrfTxInf []CdtTrfTxInf `xml:"CdtTrfTxInf"`
}

// PmtTpInf marks the payment as a SEPA service-level transfer.
type PmtTpInf struct {
	SvcLvl SvcLvl `xml:"SvcLvl"`
}

// SvcLvl carries the service level code.
type SvcLvl struct {
	Cd string `xml:"Cd"`
}

// Party is a named party.
type Party struct {
	Nm string `xml:"Nm"`
}

// CashAccount identifies an account by IBAN.
type CashAccount struct {
	ID AccountID `xml:"Id"`
}

// AccountID wraps the IBAN element.
type AccountID struct {
	IBAN string `xml:"IBAN"`
}

// Agent identifies a financial institution by BIC.
type Agent struct {
	FinInstnID FinInstnID `xml:"FinInstnId"`
}

// FinInstnID carries the BIC.
type FinInstnID struct {
	BIC string `xml:"BIC"`
}

// CdtTrfTxInf is one credit transfer.
type CdtTrfTxInf struct {
	PmtID    PmtID       `xml:"PmtId"`
	Amt      Amt         `xml:"Amt"`
	CdtrAgt  *Agent      `xml:"CdtrAgt,omitempty"`
	Cdtr     Party       `xml:"Cdtr"`
	CdtrAcct CashAccount `xml:"CdtrAcct"`
	RmtInf   *RmtInf     `xml:"RmtInf,omitempty"`
}

// PmtID carries the end-to-end identifier.
type PmtID struct {
	EndToEndID string `xml:"EndToEndId"`
}

// Amt wraps the instructed amount.
type Amt struct {
	InstdAmt InstdAmt `xml:"InstdAmt"`
}

// InstdAmt is a currency-tagged decimal amount.
type InstdAmt struct {
	Value string `xml:",chardata"`
	Ccy   string `xml:"Ccy,attr"`
}

// RmtInf carries the unstructured remittance text.
type RmtInf struct {
	Ustrd string `xml:"Ustrd"`
}
