package domain

import "strings"

// Bucket is a thematic grouping of secretaries used only for dashboard
// aggregation. Buckets are derived from the secretary code at read time and
// never stored.
type Bucket struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BucketOther is the catch-all for secretary codes no rule matches.
var BucketOther = Bucket{Code: "outros", Name: "Outros"}

type bucketRule struct {
	bucket   Bucket
	prefixes []string
}

// Rules are ordered. A compound secretary field (for example
// "SEMUS/SEMIT") is bucketed by whichever prefix matches first in this
// list; that ordering is a policy choice, not a derived property.
var bucketRules = []bucketRule{
	{Bucket{Code: "saude", Name: "Saúde"}, []string{"SEMUS"}},
	{Bucket{Code: "educacao", Name: "Educação"}, []string{"SEMED"}},
	{Bucket{Code: "fazenda", Name: "Fazenda"}, []string{"SEMFAZ"}},
	{Bucket{Code: "urbanismo", Name: "Urbanismo e Habitação"}, []string{"SEMURH"}},
	{Bucket{Code: "transito", Name: "Trânsito e Transporte"}, []string{"SMTT"}},
	{Bucket{Code: "meio-ambiente", Name: "Meio Ambiente"}, []string{"SEMMAM"}},
	{Bucket{Code: "assistencia-social", Name: "Assistência Social"}, []string{"SEMCAS"}},
	{Bucket{Code: "agricultura", Name: "Agricultura, Pesca e Abastecimento"}, []string{"SEMAPA"}},
	{Bucket{Code: "obras", Name: "Obras e Serviços Públicos"}, []string{"SEMOSP"}},
	{Bucket{Code: "tecnologia", Name: "Inovação e Tecnologia"}, []string{"SEMIT"}},
}

// Buckets returns every bucket in priority order, including the catch-all.
func Buckets() []Bucket {
	out := make([]Bucket, 0, len(bucketRules)+1)
	for _, rule := range bucketRules {
		out = append(out, rule.bucket)
	}
	out = append(out, BucketOther)
	return out
}

// BucketForSecretary maps a secretary code to exactly one bucket. The test
// is substring containment so compound codes still resolve; no match falls
// through to BucketOther.
func BucketForSecretary(code string) Bucket {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return BucketOther
	}
	for _, rule := range bucketRules {
		for _, prefix := range rule.prefixes {
			if strings.Contains(normalized, prefix) {
				return rule.bucket
			}
		}
	}
	return BucketOther
}

// BucketByCode resolves a bucket from its own code, for scoping dashboard
// queries by department. Returns false when the code is unknown.
func BucketByCode(code string) (Bucket, bool) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return Bucket{}, false
	}
	for _, rule := range bucketRules {
		if rule.bucket.Code == normalized {
			return rule.bucket, true
		}
	}
	if normalized == BucketOther.Code {
		return BucketOther, true
	}
	return Bucket{}, false
}
