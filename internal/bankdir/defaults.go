package bankdir

// DefaultEntries returns the built-in bank-code extract. It covers the
// institutions that show up in typical lab payment batches; anything else
// belongs in the bank-directory.csv overlay.
func DefaultEntries() []Entry {
	return []Entry{
		{Country: "DE", BankCode: "10000000", BIC: "MARKDEF1100", Name: "Bundesbank Berlin"},
		{Country: "DE", BankCode: "10010010", BIC: "PBNKDEFFXXX", Name: "Postbank"},
		{Country: "DE", BankCode: "10050000", BIC: "BELADEBEXXX", Name: "Berliner Sparkasse"},
		{Country: "DE", BankCode: "10070000", BIC: "DEUTDEBBXXX", Name: "Deutsche Bank Berlin"},
		{Country: "DE", BankCode: "12030000", BIC: "BYLADEM1001", Name: "Deutsche Kreditbank"},
		{Country: "DE", BankCode: "37040044", BIC: "COBADEFFXXX", Name: "Commerzbank Koeln"},
		{Country: "DE", BankCode: "43060967", BIC: "GENODEM1GLS", Name: "GLS Gemeinschaftsbank"},
		{Country: "DE", BankCode: "50010517", BIC: "INGDDEFFXXX", Name: "ING-DiBa"},
		{Country: "DE", BankCode: "70150000", BIC: "SSKMDEMMXXX", Name: "Stadtsparkasse Muenchen"},
		{Country: "NL", BankCode: "ABNA", BIC: "ABNANL2AXXX", Name: "ABN AMRO"},
		{Country: "NL", BankCode: "INGB", BIC: "INGBNL2AXXX", Name: "ING Bank"},
		{Country: "AT", BankCode: "12000", BIC: "BKAUATWWXXX", Name: "Bank Austria"},
	}
}
