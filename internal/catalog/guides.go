package catalog

import "dentadvisor-quiz-service/internal/domain"

// Decision guide quizzes: DIY vs professional, PDR vs body shop, insurance
// claims, and technician vetting.

func diyOrPro() domain.Quiz {
	return domain.Quiz{
		Slug:        "diy-or-pro",
		Title:       "DIY vs Professional",
		Description: "Repair Approach Assessment",
		Questions: []domain.Question{
			{
				ID:       "damage-type",
				Text:     "What type of dent are you dealing with?",
				HelpText: "The type of damage significantly affects DIY feasibility.",
				Options: []domain.Option{
					{Label: "Small door ding (coin-sized, shallow)", Value: "small-ding", Points: 4},
					{Label: "Medium dent without creases (golf ball sized)", Value: "medium-smooth", Points: 3},
					{Label: "Dent with sharp creases or edges", Value: "creased", Points: 1},
					{Label: "Large dent or multiple dents", Value: "large-multiple", Points: 0},
				},
			},
			{
				ID:       "paint-condition",
				Text:     "What is the paint condition in the dented area?",
				HelpText: "Paint damage changes the repair approach entirely.",
				Options: []domain.Option{
					{Label: "Paint is perfect - no scratches or chips", Value: "perfect", Points: 4},
					{Label: "Minor surface scratches (can buff out)", Value: "minor", Points: 3},
					{Label: "Paint chips or cracks visible", Value: "chips", Points: 1},
					{Label: "Paint is cracked, flaking, or bare metal showing", Value: "damaged", Points: 0},
				},
			},
			{
				ID:       "location",
				Text:     "Where is the dent located on the vehicle?",
				HelpText: "Some locations are much harder to repair than others.",
				Options: []domain.Option{
					{Label: "Flat panel area (center of door, hood, etc.)", Value: "flat", Points: 4},
					{Label: "Near but not on a body line", Value: "near-line", Points: 3},
					{Label: "On or crossing a body line or crease", Value: "on-line", Points: 1},
					{Label: "Near edge, corner, or double-panel area", Value: "difficult", Points: 0},
				},
			},
			{
				ID:       "experience",
				Text:     "What is your experience with auto body or DIY repairs?",
				HelpText: "Be honest - experience matters for successful results.",
				Options: []domain.Option{
					{Label: "Experienced with auto body work or detailed DIY", Value: "experienced", Points: 4},
					{Label: "Handy person - comfortable with car maintenance", Value: "handy", Points: 3},
					{Label: "Some DIY experience but not with cars", Value: "some", Points: 2},
					{Label: "Little to no DIY experience", Value: "none", Points: 0},
				},
			},
			{
				ID:       "tools",
				Text:     "What dent repair tools do you have access to?",
				HelpText: "Proper tools make a significant difference in results.",
				Options: []domain.Option{
					{Label: "Professional PDR kit or suction tools", Value: "professional", Points: 4},
					{Label: "Basic dent puller and heat gun", Value: "basic", Points: 3},
					{Label: "Household items only (plunger, hair dryer)", Value: "household", Points: 1},
					{Label: "No tools - would need to buy everything", Value: "none", Points: 1},
				},
			},
			{
				ID:       "vehicle-value",
				Text:     "What is your vehicle worth and how important is its appearance?",
				HelpText: "Higher-value vehicles have more at stake with DIY attempts.",
				Options: []domain.Option{
					{Label: "Older vehicle / not concerned about perfect results", Value: "low-stakes", Points: 4},
					{Label: "Mid-range vehicle / want good results", Value: "moderate", Points: 2},
					{Label: "Newer or luxury vehicle / appearance matters", Value: "high-value", Points: 1},
					{Label: "Lease vehicle or planning to sell soon", Value: "critical", Points: 0},
				},
			},
			{
				ID:       "risk-tolerance",
				Text:     "How would you feel if the DIY attempt made it worse?",
				HelpText: "Failed DIY can increase professional repair costs.",
				Options: []domain.Option{
					{Label: "I'd be fine - it's a learning experience", Value: "accepting", Points: 4},
					{Label: "Mildly frustrated but would accept it", Value: "mild", Points: 3},
					{Label: "Quite upset - don't want to risk it", Value: "concerned", Points: 1},
					{Label: "Can't afford to make it worse", Value: "cannot-risk", Points: 0},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       22,
				MaxScore:       28,
				Title:          "Good Candidate for DIY Repair",
				Description:    "Based on your damage type, experience level, and risk tolerance, a DIY repair attempt is reasonable for your situation. The dent characteristics suggest household or basic tools may achieve acceptable results.",
				Recommendation: "Start with the least invasive method: clean the area, use a heat gun or hair dryer to warm the metal, then try a suction-based puller. The Department of Energy notes that heating metal makes it more pliable. Watch tutorial videos first and work slowly. If you don't see improvement after 2-3 attempts, stop and consult a professional to avoid further damage.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       12,
				MaxScore:       21,
				Title:          "Consider Professional Help",
				Description:    "Your situation has some factors that favor DIY and some that suggest professional repair. The risk of making the damage worse or not achieving satisfactory results is moderate.",
				Recommendation: "Get a professional quote before attempting DIY - you may be surprised how affordable PDR can be. The Consumer Financial Protection Bureau recommends getting multiple estimates. If cost is the main concern, some technicians offer \"touch-up\" pricing for imperfect but improved results. A failed DIY attempt can double professional repair costs.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       11,
				Title:          "Professional Repair Recommended",
				Description:    "Based on your damage characteristics, vehicle value, or other factors, professional repair is strongly recommended. DIY attempts in your situation have a high risk of causing additional damage or unsatisfactory results.",
				Recommendation: "This type of repair requires professional tools and expertise. According to the Federal Trade Commission's auto repair guidance, consumers should seek qualified technicians for complex repairs. Look for I-CAR certified PDR technicians who can assess whether paintless repair or body shop work is needed. The investment in professional repair protects your vehicle's value.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "U.S. Department of Energy", URL: "https://www.energy.gov", Description: "Material science and metal properties information"},
			{Name: "Consumer Financial Protection Bureau", URL: "https://www.consumerfinance.gov", Description: "Consumer guidance on service estimates and contracts"},
			{Name: "Federal Trade Commission", URL: "https://consumer.ftc.gov/articles/auto-repair", Description: "Auto repair consumer rights and choosing qualified technicians"},
		},
		CTA: domain.CallToAction{Text: "Find Professional PDR", Link: "/find-technician"},
	}
}

func pdrVsBodyShop() domain.Quiz {
	return domain.Quiz{
		Slug:        "pdr-vs-body-shop",
		Title:       "PDR vs Body Shop",
		Description: "Repair Method Comparison",
		Questions: []domain.Question{
			{
				ID:       "damage-type",
				Text:     "What type of damage does your vehicle have?",
				HelpText: "Select the option that best describes your situation.",
				Options: []domain.Option{
					{Label: "Dents without paint damage (hail, door dings)", Value: "dents-only", Points: 4},
					{Label: "Dents with minor scratches (paint intact underneath)", Value: "minor-scratch", Points: 3},
					{Label: "Dents with paint chips or cracks", Value: "paint-damage", Points: 1},
					{Label: "Dents with deep scratches to bare metal", Value: "deep-scratch", Points: 0},
				},
			},
			{
				ID:       "timeline",
				Text:     "How quickly do you need the repair completed?",
				HelpText: "PDR is typically much faster than body shop repairs.",
				Options: []domain.Option{
					{Label: "Same day or within 24 hours", Value: "urgent", Points: 4},
					{Label: "Within a few days", Value: "soon", Points: 3},
					{Label: "Within a week or two", Value: "flexible", Points: 2},
					{Label: "No rush - whenever it fits the schedule", Value: "no-rush", Points: 1},
				},
			},
			{
				ID:       "paint-priority",
				Text:     "How important is preserving the original factory paint?",
				HelpText: "Factory paint affects resale value and long-term durability.",
				Options: []domain.Option{
					{Label: "Very important - I want to keep the original paint", Value: "very-important", Points: 4},
					{Label: "Somewhat important - prefer original if possible", Value: "somewhat", Points: 3},
					{Label: "Not a priority - just want it fixed", Value: "not-priority", Points: 1},
					{Label: "Car is already repainted in that area", Value: "already-repainted", Points: 0},
				},
			},
			{
				ID:       "budget",
				Text:     "What is your budget for this repair?",
				HelpText: "PDR typically costs 50-70% less than traditional body work.",
				Options: []domain.Option{
					{Label: "Looking for the most affordable option", Value: "budget", Points: 4},
					{Label: "Moderate budget - want good value", Value: "moderate", Points: 3},
					{Label: "Flexible budget - quality is priority", Value: "flexible", Points: 2},
					{Label: "Insurance is covering it", Value: "insurance", Points: 2},
				},
			},
			{
				ID:       "rental-car",
				Text:     "Would you need a rental car during repairs?",
				HelpText: "Longer repair times mean more rental car expenses.",
				Options: []domain.Option{
					{Label: "Yes, I need my car daily", Value: "yes-daily", Points: 4},
					{Label: "Yes, but I have alternate transportation for a day or two", Value: "yes-short", Points: 3},
					{Label: "I can manage without for a week if needed", Value: "can-manage", Points: 1},
					{Label: "I have another vehicle to use", Value: "another-car", Points: 0},
				},
			},
			{
				ID:       "vehicle-plans",
				Text:     "What are your plans for this vehicle?",
				HelpText: "This affects how important original paint preservation is.",
				Options: []domain.Option{
					{Label: "Keeping it long-term (5+ years)", Value: "keeping", Points: 3},
					{Label: "Planning to sell or trade in soon", Value: "selling", Points: 4},
					{Label: "Lease vehicle - returning to dealer", Value: "lease", Points: 4},
					{Label: "Work/fleet vehicle - appearance matters", Value: "fleet", Points: 3},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       18,
				MaxScore:       24,
				Title:          "PDR Is Your Best Choice",
				Description:    "Based on your priorities and damage type, paintless dent repair is clearly the better option for you. You'll save money, time, and preserve your original factory paint.",
				Recommendation: "PDR will likely save you 50-70% compared to body shop repair, with same-day service in most cases. Your vehicle's Carfax will remain clean (no body work reported), and you'll preserve the factory paint that protects against rust and maintains resale value. According to Kelley Blue Book, vehicles with original paint command higher resale prices.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       10,
				MaxScore:       17,
				Title:          "PDR Is Likely the Better Option",
				Description:    "For your situation, PDR appears to be the more practical choice, though both options could work. The benefits of speed, cost savings, and paint preservation make PDR worth pursuing first.",
				Recommendation: "We recommend getting quotes from both a PDR technician and a body shop to compare. In most cases like yours, PDR offers better value. Remember: body shop repairs typically take 3-5 days and require rental car arrangements, while PDR is often completed same-day.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       9,
				Title:          "Body Shop May Be Necessary",
				Description:    "Based on your damage type or priorities, traditional body shop repair may be the better solution. Paint damage or structural concerns typically require conventional repair methods.",
				Recommendation: "If your paint is damaged, body filler or repainting may be necessary - which PDR cannot address. Get quotes from both options, but prepare for body shop pricing. Ask about paint warranty and make sure they use OEM-quality materials. The Federal Trade Commission recommends getting multiple estimates for body work.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "Kelley Blue Book", URL: "https://www.kbb.com", Description: "Vehicle valuation and the impact of body work on resale value"},
			{Name: "Federal Trade Commission", URL: "https://consumer.ftc.gov/articles/auto-body-repair", Description: "Consumer guide to auto body repair rights and best practices"},
			{Name: "Insurance Information Institute", URL: "https://www.iii.org", Description: "Insurance claim guidelines for vehicle damage repair"},
		},
		CTA: domain.CallToAction{Text: "Get PDR Quotes", Link: "/find-technician"},
	}
}

func insuranceClaimNavigator() domain.Quiz {
	return domain.Quiz{
		Slug:        "insurance-claim-navigator",
		Title:       "Insurance Claim Decision",
		Description: "File or Pay Out-of-Pocket?",
		Questions: []domain.Question{
			{
				ID:       "damage-cause",
				Text:     "What caused the dent damage?",
				HelpText: "Different causes are covered under different policy types.",
				Options: []domain.Option{
					{Label: "Hail storm or falling object", Value: "comprehensive", Points: 4},
					{Label: "Hit-and-run or vandalism", Value: "comp-hit", Points: 4},
					{Label: "Collision with another vehicle or object", Value: "collision", Points: 3},
					{Label: "Unknown / accumulated door dings", Value: "unknown", Points: 1},
				},
			},
			{
				ID:       "deductible",
				Text:     "What is your relevant deductible amount?",
				HelpText: "Comprehensive for hail/vandalism, collision for accidents.",
				Options: []domain.Option{
					{Label: "$0 - $250 deductible", Value: "low", Points: 4},
					{Label: "$250 - $500 deductible", Value: "medium", Points: 3},
					{Label: "$500 - $1,000 deductible", Value: "high", Points: 2},
					{Label: "Over $1,000 or not sure", Value: "very-high", Points: 1},
				},
			},
			{
				ID:       "damage-estimate",
				Text:     "What is the estimated repair cost?",
				HelpText: "Consider getting quotes before filing a claim.",
				Options: []domain.Option{
					{Label: "Over $2,500 in damage", Value: "severe", Points: 4},
					{Label: "$1,000 - $2,500 in damage", Value: "significant", Points: 3},
					{Label: "$500 - $1,000 in damage", Value: "moderate", Points: 2},
					{Label: "Under $500 in damage", Value: "minor", Points: 1},
				},
			},
			{
				ID:       "claim-history",
				Text:     "Have you filed any claims in the past 3-5 years?",
				HelpText: "Multiple claims can affect your premium and insurability.",
				Options: []domain.Option{
					{Label: "No claims in 5+ years", Value: "clean", Points: 4},
					{Label: "One claim in the past 3-5 years", Value: "one", Points: 3},
					{Label: "Two claims in the past 3 years", Value: "two", Points: 1},
					{Label: "Three or more recent claims", Value: "multiple", Points: 0},
				},
			},
			{
				ID:       "at-fault",
				Text:     "If collision-related, were you at fault?",
				HelpText: "At-fault claims have bigger premium impacts.",
				Options: []domain.Option{
					{Label: "Not applicable - hail or vandalism", Value: "na-comp", Points: 4},
					{Label: "Not at fault - other driver responsible", Value: "not-fault", Points: 4},
					{Label: "Partial fault or unclear", Value: "partial", Points: 2},
					{Label: "At fault for the incident", Value: "at-fault", Points: 1},
				},
			},
			{
				ID:       "premium-concern",
				Text:     "How concerned are you about premium increases?",
				HelpText: "Claims can raise premiums for 3-5 years.",
				Options: []domain.Option{
					{Label: "Not concerned - damage far exceeds any increase", Value: "not-concerned", Points: 4},
					{Label: "Somewhat concerned - want to weigh options", Value: "somewhat", Points: 3},
					{Label: "Very concerned - premiums are already high", Value: "very", Points: 1},
					{Label: "Can't afford any premium increase", Value: "critical", Points: 0},
				},
			},
			{
				ID:       "documentation",
				Text:     "Do you have documentation of the damage and cause?",
				HelpText: "Photos, police reports, and weather records help claims.",
				Options: []domain.Option{
					{Label: "Yes - photos, police report or weather documentation", Value: "full", Points: 4},
					{Label: "Yes - have photos of the damage", Value: "photos", Points: 3},
					{Label: "Some documentation but not complete", Value: "partial", Points: 2},
					{Label: "No documentation", Value: "none", Points: 1},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       24,
				MaxScore:       28,
				Title:          "Filing a Claim Makes Sense",
				Description:    "Based on your damage extent, deductible, and claim history, filing an insurance claim appears to be financially beneficial. The repair costs significantly exceed your deductible.",
				Recommendation: "Contact your insurance company to file a claim. The National Association of Insurance Commissioners (NAIC) recommends documenting everything with photos and keeping all repair estimates. You have the right to choose your own repair shop - consider a PDR specialist who works with insurance companies. Get a copy of the adjuster's damage assessment for your records.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       15,
				MaxScore:       23,
				Title:          "Weigh the Costs Carefully",
				Description:    "Your situation has factors both for and against filing a claim. The financial benefit may be marginal when considering potential premium increases.",
				Recommendation: "Before filing, ask your insurance agent about the specific premium impact of a claim given your history. The Insurance Information Institute notes that comprehensive claims (hail, theft) typically have less premium impact than collision claims. Calculate: (repair cost - deductible) vs (premium increase × 3-5 years). Get written repair estimates to make an informed decision.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       14,
				Title:          "Consider Paying Out-of-Pocket",
				Description:    "Based on your deductible amount, damage extent, or claim history, paying out-of-pocket may be the better financial choice. The claim benefit doesn't outweigh the potential downsides.",
				Recommendation: "When repair costs are close to or below your deductible, out-of-pocket payment avoids claim history impacts. According to the Consumer Federation of America, minor claims can raise premiums by $200-$400 annually for 3-5 years. PDR is often 50-70% less than body shop repair, making out-of-pocket more feasible. Get PDR quotes before deciding.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "National Association of Insurance Commissioners (NAIC)", URL: "https://content.naic.org", Description: "Consumer guidance on auto insurance claims and rights"},
			{Name: "Insurance Information Institute", URL: "https://www.iii.org", Description: "Insurance industry data and consumer education"},
			{Name: "Consumer Federation of America", URL: "https://consumerfed.org", Description: "Consumer advocacy and insurance claim impact research"},
		},
		CTA: domain.CallToAction{Text: "Get Repair Estimates", Link: "/find-technician"},
	}
}

func technicianQualified() domain.Quiz {
	return domain.Quiz{
		Slug:        "technician-qualified",
		Title:       "Technician Qualification Check",
		Description: "Professional Standards Evaluation",
		Questions: []domain.Question{
			{
				ID:       "certifications",
				Text:     "Does the technician hold any industry certifications?",
				HelpText: "Ask about I-CAR, Vale, NAPDRT, or manufacturer certifications.",
				Options: []domain.Option{
					{Label: "Yes - I-CAR certified and/or Vale trained", Value: "certified", Points: 4},
					{Label: "Yes - NAPDRT member or manufacturer certified", Value: "member", Points: 3},
					{Label: "Claims to be certified but couldn't show proof", Value: "claims", Points: 1},
					{Label: "No certifications or didn't ask", Value: "none", Points: 0},
				},
			},
			{
				ID:       "insurance",
				Text:     "Does the business carry liability insurance?",
				HelpText: "Proper insurance protects you if something goes wrong.",
				Options: []domain.Option{
					{Label: "Yes - provided proof of insurance", Value: "verified", Points: 4},
					{Label: "Yes - they said they're insured", Value: "claimed", Points: 2},
					{Label: "Not sure / Didn't ask", Value: "unsure", Points: 1},
					{Label: "No or refused to answer", Value: "no", Points: 0},
				},
			},
			{
				ID:       "warranty",
				Text:     "What warranty is offered on the repair?",
				HelpText: "Quality technicians stand behind their work.",
				Options: []domain.Option{
					{Label: "Lifetime warranty in writing", Value: "lifetime", Points: 4},
					{Label: "2-5 year written warranty", Value: "long", Points: 3},
					{Label: "90 days to 1 year warranty", Value: "short", Points: 2},
					{Label: "Verbal warranty only or none offered", Value: "none", Points: 0},
				},
			},
			{
				ID:       "estimate",
				Text:     "How was the estimate provided?",
				HelpText: "Professional shops provide detailed written estimates.",
				Options: []domain.Option{
					{Label: "Detailed written estimate after in-person inspection", Value: "detailed", Points: 4},
					{Label: "Written estimate from photos", Value: "photos", Points: 3},
					{Label: "Verbal quote only", Value: "verbal", Points: 1},
					{Label: "Quote seemed unusually low compared to others", Value: "lowball", Points: 0},
				},
			},
			{
				ID:       "reviews",
				Text:     "What do online reviews and ratings show?",
				HelpText: "Check Google, Yelp, and BBB ratings.",
				Options: []domain.Option{
					{Label: "4.5+ stars with 50+ reviews", Value: "excellent", Points: 4},
					{Label: "4.0-4.4 stars with good review count", Value: "good", Points: 3},
					{Label: "Mixed reviews or few reviews available", Value: "mixed", Points: 1},
					{Label: "Poor reviews, complaints, or no online presence", Value: "poor", Points: 0},
				},
			},
			{
				ID:       "experience",
				Text:     "How many years of PDR experience does the technician have?",
				HelpText: "PDR requires years of practice to master.",
				Options: []domain.Option{
					{Label: "10+ years of dedicated PDR experience", Value: "expert", Points: 4},
					{Label: "5-10 years of experience", Value: "experienced", Points: 3},
					{Label: "2-5 years of experience", Value: "developing", Points: 2},
					{Label: "Less than 2 years or won't say", Value: "new", Points: 0},
				},
			},
			{
				ID:       "facility",
				Text:     "What is the work environment like?",
				HelpText: "Professional setup affects repair quality.",
				Options: []domain.Option{
					{Label: "Professional shop with proper lighting and tools", Value: "shop", Points: 4},
					{Label: "Mobile service with professional equipment", Value: "mobile", Points: 3},
					{Label: "Works from home but has good setup", Value: "home", Points: 2},
					{Label: "Unprofessional setup or couldn't verify", Value: "unknown", Points: 0},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       22,
				MaxScore:       28,
				Title:          "Highly Qualified Technician",
				Description:    "Based on your answers, this technician appears to be highly qualified and professional. They demonstrate the certifications, experience, and business practices that indicate quality work.",
				Recommendation: "This technician meets the standards recommended by industry organizations like NAPDRT and I-CAR. Their warranty, insurance, and customer reviews suggest you're in good hands. Proceed with confidence, but always get the warranty in writing before work begins.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       14,
				MaxScore:       21,
				Title:          "Acceptable with Some Concerns",
				Description:    "This technician shows some positive indicators but also has areas of concern. They may be capable, but you should verify the missing credentials or get additional quotes.",
				Recommendation: "Ask more questions about the areas that scored lower. Request proof of insurance and get the warranty terms in writing. According to the Better Business Bureau, you should never feel pressured into immediate decisions. Consider getting a second opinion from another qualified technician.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       13,
				Title:          "Significant Red Flags",
				Description:    "Multiple warning signs suggest this may not be a qualified or reputable technician. The lack of verifiable credentials, poor reviews, or unprofessional practices are concerning.",
				Recommendation: "We strongly recommend getting quotes from other technicians. The Consumer Financial Protection Bureau advises consumers to verify contractor credentials before authorizing work. Look for I-CAR certified or NAPDRT member technicians who can provide proof of insurance and written warranties.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "Better Business Bureau", URL: "https://www.bbb.org", Description: "Business accreditation and consumer complaint information"},
			{Name: "I-CAR (Inter-Industry Conference on Auto Collision Repair)", URL: "https://www.i-car.com", Description: "Industry standard for auto repair technician training and certification"},
			{Name: "Consumer Financial Protection Bureau", URL: "https://www.consumerfinance.gov", Description: "Consumer rights and contractor verification guidance"},
		},
		CTA: domain.CallToAction{Text: "Find Verified Technicians", Link: "/find-technician"},
	}
}
