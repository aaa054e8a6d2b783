package sales

import "time"

// Crore is 1 Cr in INR
const Crore = 10_000_000

// Lakh is 1 L in INR
const Lakh = 100_000

// SeedReps returns the built-in rep roster used when no persistence
// backend is configured. Quotas are annual targets; the variable-pay pool
// is the 20% variable component of a representative package.
func SeedReps() []SalesRep {
	return []SalesRep{
		{
			ID:              "george",
			Name:            "George",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=George",
			Quota:           4 * Crore,
			VariablePayPool: 0.2 * 4 * Crore * 0.1,
		},
		{
			ID:              "hari",
			Name:            "Hari",
			Avatar:          "https://api.dicebear.com/7.x/avataaars/svg?seed=Hari",
			Quota:           4.5 * Crore,
			VariablePayPool: 0.2 * 4.5 * Crore * 0.1,
		},
		{
			ID:              "team-dva",
			Name:            "Team DVA",
			TeamMembers:     []string{"Dinesh", "Venkat", "Arjun"},
			Avatar:          "https://api.dicebear.com/7.x/identicon/svg?seed=DVA",
			Quota:           4.5 * Crore,
			VariablePayPool: 0.2 * 4.5 * Crore * 0.1,
		},
		{
			ID:              "team-la",
			Name:            "Team LA",
			TeamMembers:     []string{"Logesh", "Ajay"},
			Avatar:          "https://api.dicebear.com/7.x/identicon/svg?seed=LA",
			Quota:           4.5 * Crore,
			VariablePayPool: 0.2 * 4.5 * Crore * 0.1,
		},
		{
			ID:              "team-snv",
			Name:            "Team SNV",
			TeamMembers:     []string{"Sasi", "Nirupama", "Vicky"},
			Avatar:          "https://api.dicebear.com/7.x/identicon/svg?seed=SNV",
			Quota:           4.5 * Crore,
			VariablePayPool: 0.2 * 4.5 * Crore * 0.1,
		},
	}
}

// SeedDeals returns the built-in deal set used when no persistence backend
// is configured
func SeedDeals() []Deal {
	now := time.Now().UTC()
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []Deal{
		{
			ID:            "d-1",
			CustomerName:  "Tech Mahindra",
			Title:         "Enterprise License",
			Value:         0.4 * Crore,
			Stage:         StageClosedWon,
			Category:      CategorySoftware,
			BusinessType:  BusinessTypeExisting,
			AssignedRepID: "george",
			CloseDate:     date(2023, time.November, 15),
			Probability:   100,
			LastUpdated:   now,
		},
		{
			ID:            "d-2",
			CustomerName:  "Infosys Ltd",
			Title:         "Cloud Transformation",
			Value:         0.8 * Crore,
			Stage:         StageNegotiation,
			Category:      CategoryCloud,
			BusinessType:  BusinessTypeNew,
			AssignedRepID: "hari",
			CloseDate:     date(2023, time.November, 20),
			Probability:   80,
			LastUpdated:   now,
		},
		{
			ID:            "d-3",
			CustomerName:  "Wipro",
			Title:         "Hardware Upgrade",
			Value:         1.2 * Crore,
			Stage:         StageProposal,
			Category:      CategoryHardware,
			BusinessType:  BusinessTypeExisting,
			AssignedRepID: "team-dva",
			CloseDate:     date(2023, time.December, 1),
			Probability:   60,
			LastUpdated:   now,
		},
		{
			ID:            "d-4",
			CustomerName:  "HCL Tech",
			Title:         "AI Integration",
			Value:         2.5 * Crore,
			Stage:         StageLead,
			Category:      CategoryServices,
			BusinessType:  BusinessTypeNew,
			AssignedRepID: "team-la",
			CloseDate:     date(2024, time.January, 15),
			Probability:   20,
			LastUpdated:   now,
		},
		{
			ID:            "d-5",
			CustomerName:  "TCS",
			Title:         "Security Audit",
			Value:         0.35 * Crore,
			Stage:         StageClosedWon,
			Category:      CategoryConsulting,
			BusinessType:  BusinessTypeNew,
			AssignedRepID: "team-snv",
			CloseDate:     date(2023, time.October, 1),
			Probability:   100,
			LastUpdated:   now,
		},
		{
			ID:            "d-6",
			CustomerName:  "Mindtree",
			Title:         "Consulting Retainer",
			Value:         0.65 * Crore,
			Stage:         StageNegotiation,
			Category:      CategoryConsulting,
			BusinessType:  BusinessTypeExisting,
			AssignedRepID: "george",
			CloseDate:     date(2023, time.December, 10),
			Probability:   75,
			LastUpdated:   now,
		},
		{
			ID:            "d-7",
			CustomerName:  "L&T Infotech",
			Title:         "Infrastructure Deal",
			Value:         1.5 * Crore,
			Stage:         StageProposal,
			Category:      CategoryHardware,
			BusinessType:  BusinessTypeNew,
			AssignedRepID: "hari",
			CloseDate:     date(2024, time.February, 15),
			Probability:   50,
			LastUpdated:   now,
		},
	}
}
