package corrector

type CorrectionResult struct {
	Original     string `json:"original"`
	Corrected    string `json:"corrected"`
	WasCorrected bool   `json:"was_corrected"`
	Distance     int    `json:"distance"`
}
