package knowledge

import "fmt"

// BeneficStar is an auxiliary star that amplifies the palace it occupies
type BeneficStar struct {
	ID               string   `json:"id" dynamodbav:"id"`
	Chinese          string   `json:"chinese" dynamodbav:"chinese"`
	English          string   `json:"english" dynamodbav:"english"`
	Meaning          string   `json:"meaning" dynamodbav:"meaning"`
	CharacterMeaning string   `json:"character_meaning" dynamodbav:"character_meaning"`
	Characteristic   string   `json:"characteristic" dynamodbav:"characteristic"`
	Benefits         []string `json:"benefits" dynamodbav:"benefits"`
	BestWith         []string `json:"best_with" dynamodbav:"best_with"`
	HouseBenefits    []string `json:"house_benefits" dynamodbav:"house_benefits"`
	Interpretation   string   `json:"interpretation" dynamodbav:"interpretation"`
}

// Validate rejects malformed benefic star records at load time
func (b *BeneficStar) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("benefic star: id is required")
	}
	if b.Chinese == "" || b.English == "" {
		return fmt.Errorf("benefic star %s: chinese and english names are required", b.ID)
	}
	return nil
}

// MaleficStar is an auxiliary star that disrupts the palace it occupies
type MaleficStar struct {
	ID               string   `json:"id" dynamodbav:"id"`
	Chinese          string   `json:"chinese" dynamodbav:"chinese"`
	English          string   `json:"english" dynamodbav:"english"`
	Meaning          string   `json:"meaning" dynamodbav:"meaning"`
	CharacterMeaning string   `json:"character_meaning" dynamodbav:"character_meaning"`
	Characteristic   string   `json:"characteristic" dynamodbav:"characteristic"`
	Effects          []string `json:"effects" dynamodbav:"effects"`
	Combinations     []string `json:"combinations" dynamodbav:"combinations"`
	HouseDamage      []string `json:"house_damage" dynamodbav:"house_damage"`
	Interpretation   string   `json:"interpretation" dynamodbav:"interpretation"`
}

// Validate rejects malformed malefic star records at load time
func (m *MaleficStar) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("malefic star: id is required")
	}
	if m.Chinese == "" || m.English == "" {
		return fmt.Errorf("malefic star %s: chinese and english names are required", m.ID)
	}
	return nil
}
