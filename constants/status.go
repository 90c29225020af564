package constants

// AnalysisStatus is the canonical status for rows in analyses.
type AnalysisStatus string

// Stable values (store these exact strings in DB).
const (
	AnalysisPending  AnalysisStatus = "pending"  // row created, processing not finished
	AnalysisAnalyzed AnalysisStatus = "analyzed" // text extracted and summarized
	AnalysisFailed   AnalysisStatus = "failed"   // terminal failure
)

// AnalysisStatuses holds the allowed values for the analyses status column.
var AnalysisStatuses = []string{
	string(AnalysisPending),
	string(AnalysisAnalyzed),
	string(AnalysisFailed),
}

// DetailStatus classifies a single result line against its reference range.
type DetailStatus string

const (
	DetailNormal   DetailStatus = "Normal"
	DetailLow      DetailStatus = "Low"
	DetailHigh     DetailStatus = "High"
	DetailCritical DetailStatus = "Critical"
)

// DetailStatuses holds the allowed values for the analysis_details status column.
var DetailStatuses = []string{
	string(DetailNormal),
	string(DetailLow),
	string(DetailHigh),
	string(DetailCritical),
}

// MedicalDisclaimer is stored verbatim on every analysis, independent of content.
const MedicalDisclaimer = "Ce résumé est informatif et ne remplace pas un avis médical."
