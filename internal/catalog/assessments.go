package catalog

import "dentadvisor-quiz-service/internal/domain"

// Damage assessment quizzes: PDR suitability, hail severity, and classic
// car compatibility.

func canMyDentBeFixed() domain.Quiz {
	return domain.Quiz{
		Slug:        "can-my-dent-be-fixed",
		Title:       "Can My Dent Be Fixed?",
		Description: "PDR Assessment",
		Questions: []domain.Question{
			{
				ID:       "paint-condition",
				Text:     "What is the condition of the paint where the dent is located?",
				HelpText: "Look closely at the damaged area to assess paint integrity.",
				Options: []domain.Option{
					{Label: "Paint is intact with no cracks, chips, or scratches", Value: "intact", Points: 3},
					{Label: "Minor scratches but no paint chips or cracks", Value: "minor-scratches", Points: 2},
					{Label: "Paint is chipped, cracked, or peeling", Value: "damaged", Points: 0},
					{Label: "Not sure / Hard to tell", Value: "unsure", Points: 1},
				},
			},
			{
				ID:       "dent-size",
				Text:     "How large is the dent?",
				HelpText: "Estimate the diameter of the damaged area.",
				Options: []domain.Option{
					{Label: "Small (quarter-sized or smaller)", Value: "small", Points: 3},
					{Label: "Medium (golf ball to baseball sized)", Value: "medium", Points: 2},
					{Label: "Large (softball sized or bigger)", Value: "large", Points: 1},
					{Label: "Multiple dents of varying sizes", Value: "multiple", Points: 2},
				},
			},
			{
				ID:       "dent-depth",
				Text:     "How deep is the dent?",
				HelpText: "Run your finger across the dent to feel the depth.",
				Options: []domain.Option{
					{Label: "Shallow - barely noticeable by touch", Value: "shallow", Points: 3},
					{Label: "Moderate - clearly feels indented", Value: "moderate", Points: 2},
					{Label: "Deep - significant depression in the metal", Value: "deep", Points: 1},
					{Label: "Has a sharp crease or fold in the metal", Value: "creased", Points: 0},
				},
			},
			{
				ID:       "location",
				Text:     "Where is the dent located on your vehicle?",
				HelpText: "The location affects accessibility for PDR technicians.",
				Options: []domain.Option{
					{Label: "Hood, roof, or trunk lid", Value: "accessible", Points: 3},
					{Label: "Door panel or fender", Value: "door-fender", Points: 3},
					{Label: "Quarter panel or near wheel well", Value: "quarter", Points: 2},
					{Label: "Near edge, body line, or trim", Value: "edge", Points: 1},
					{Label: "Pillar or structural area", Value: "structural", Points: 0},
				},
			},
			{
				ID:       "cause",
				Text:     "What caused the dent?",
				HelpText: "Different causes create different types of damage.",
				Options: []domain.Option{
					{Label: "Hail storm", Value: "hail", Points: 3},
					{Label: "Door ding in parking lot", Value: "door-ding", Points: 3},
					{Label: "Shopping cart or minor impact", Value: "cart", Points: 2},
					{Label: "Collision with another vehicle", Value: "collision", Points: 1},
					{Label: "Unknown / Just noticed it", Value: "unknown", Points: 2},
				},
			},
			{
				ID:       "vehicle-age",
				Text:     "How old is your vehicle?",
				HelpText: "Paint and metal characteristics change with age.",
				Options: []domain.Option{
					{Label: "Less than 5 years old", Value: "new", Points: 3},
					{Label: "5-10 years old", Value: "mid", Points: 2},
					{Label: "10-20 years old", Value: "older", Points: 1},
					{Label: "Over 20 years old (classic/vintage)", Value: "classic", Points: 1},
				},
			},
			{
				ID:       "previous-repair",
				Text:     "Has this panel been repaired or repainted before?",
				HelpText: "Previous body work can affect PDR viability.",
				Options: []domain.Option{
					{Label: "No, it has original factory paint", Value: "original", Points: 3},
					{Label: "Yes, it was professionally repainted", Value: "repainted", Points: 1},
					{Label: "Yes, it has body filler (Bondo)", Value: "filler", Points: 0},
					{Label: "Not sure", Value: "unsure", Points: 2},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       17,
				MaxScore:       21,
				Title:          "Excellent PDR Candidate",
				Description:    "Based on your answers, your dent is an excellent candidate for paintless dent repair. PDR should be able to restore your vehicle to like-new condition while preserving the original factory paint.",
				Recommendation: "We recommend getting quotes from certified PDR technicians. Most repairs like yours can be completed in a few hours at 50-70% less than traditional body shop costs. Your original paint and factory warranty will be preserved.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       11,
				MaxScore:       16,
				Title:          "Good PDR Candidate",
				Description:    "Your dent appears to be a good candidate for PDR, though a technician will need to assess it in person to confirm. Some factors may make the repair more challenging, but it's likely still fixable.",
				Recommendation: "Schedule a free inspection with a certified PDR technician. They can evaluate the specific characteristics of your dent and provide an accurate quote. Most technicians offer no-obligation assessments.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       10,
				Title:          "PDR May Not Be Suitable",
				Description:    "Based on your answers, traditional PDR may not be the best solution for your damage. Factors like paint condition, dent severity, or location may require conventional body shop repair.",
				Recommendation: "We still recommend consulting with a PDR specialist - they may have advanced techniques for challenging repairs. However, you should also get quotes from body shops for comparison. Some damage is better addressed with traditional methods.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "I-CAR", URL: "https://www.i-car.com", Description: "Industry standard for auto body repair training and certification"},
			{Name: "National Highway Traffic Safety Administration", URL: "https://www.nhtsa.gov", Description: "Vehicle safety standards and repair guidelines"},
			{Name: "Insurance Institute for Highway Safety", URL: "https://www.iihs.org", Description: "Research on vehicle damage and repair outcomes"},
		},
		CTA: domain.CallToAction{Text: "Get Free PDR Quotes", Link: "/find-technician"},
	}
}

func hailDamageAssessment() domain.Quiz {
	return domain.Quiz{
		Slug:        "hail-damage-assessment",
		Title:       "Hail Damage Assessment",
		Description: "Severity Evaluation",
		Questions: []domain.Question{
			{
				ID:       "dent-count",
				Text:     "Approximately how many dents can you count on your vehicle?",
				HelpText: "Count all visible dents across the entire vehicle.",
				Options: []domain.Option{
					{Label: "1-10 dents", Value: "minimal", Points: 1},
					{Label: "11-50 dents", Value: "moderate", Points: 2},
					{Label: "51-150 dents", Value: "significant", Points: 3},
					{Label: "Over 150 dents (too many to count)", Value: "severe", Points: 4},
				},
			},
			{
				ID:       "panels-affected",
				Text:     "How many panels are affected by hail damage?",
				HelpText: "Count horizontal surfaces: hood, roof, trunk, plus any side panels.",
				Options: []domain.Option{
					{Label: "1-2 panels (usually hood or roof only)", Value: "few", Points: 1},
					{Label: "3-4 panels", Value: "several", Points: 2},
					{Label: "5-7 panels", Value: "many", Points: 3},
					{Label: "Nearly every panel is damaged", Value: "all", Points: 4},
				},
			},
			{
				ID:       "dent-size",
				Text:     "What is the size of the largest dents?",
				HelpText: "Hail size directly correlates to dent severity.",
				Options: []domain.Option{
					{Label: "Pea-sized (1/4 inch or less)", Value: "small", Points: 1},
					{Label: "Marble to dime-sized (1/4 to 3/4 inch)", Value: "medium", Points: 2},
					{Label: "Quarter to golf ball-sized (3/4 to 1.5 inch)", Value: "large", Points: 3},
					{Label: "Larger than golf ball (over 1.5 inch)", Value: "xlarge", Points: 4},
				},
			},
			{
				ID:       "paint-damage",
				Text:     "Is there any paint damage from the hail?",
				HelpText: "Look for chips, cracks, or bare metal spots.",
				Options: []domain.Option{
					{Label: "No - paint is intact everywhere", Value: "none", Points: 4},
					{Label: "Minor - a few small chips", Value: "minor", Points: 3},
					{Label: "Moderate - multiple chips or small cracks", Value: "moderate", Points: 1},
					{Label: "Severe - large areas of damaged paint", Value: "severe", Points: 0},
				},
			},
			{
				ID:       "glass-damage",
				Text:     "Is there any glass damage (windshield, windows, sunroof)?",
				HelpText: "Check all glass surfaces for cracks, chips, or breaks.",
				Options: []domain.Option{
					{Label: "No glass damage", Value: "none", Points: 3},
					{Label: "Small chip(s) in windshield only", Value: "chip", Points: 2},
					{Label: "Cracked windshield needs replacement", Value: "cracked", Points: 1},
					{Label: "Multiple glass panels damaged", Value: "multiple", Points: 0},
				},
			},
			{
				ID:       "vehicle-value",
				Text:     "What is the approximate value of your vehicle?",
				HelpText: "This helps determine if repair costs might exceed the threshold for total loss.",
				Options: []domain.Option{
					{Label: "Over $30,000", Value: "high", Points: 4},
					{Label: "$15,000 - $30,000", Value: "mid-high", Points: 3},
					{Label: "$8,000 - $15,000", Value: "mid", Points: 2},
					{Label: "Under $8,000", Value: "low", Points: 1},
				},
			},
			{
				ID:       "insurance-status",
				Text:     "Do you have comprehensive insurance coverage?",
				HelpText: "Hail damage is covered under comprehensive, not collision.",
				Options: []domain.Option{
					{Label: "Yes, with low deductible ($100-$500)", Value: "yes-low", Points: 4},
					{Label: "Yes, with higher deductible ($500-$1000)", Value: "yes-high", Points: 3},
					{Label: "Yes, but not sure about deductible", Value: "yes-unsure", Points: 2},
					{Label: "No comprehensive coverage / Not sure", Value: "no", Points: 0},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       22,
				MaxScore:       28,
				Title:          "Minor Hail Damage",
				Description:    "Your vehicle has minor hail damage that is an excellent candidate for PDR repair. With minimal dents and no paint damage, repairs should be straightforward and relatively affordable.",
				Recommendation: "File a comprehensive insurance claim if your deductible makes sense (typically worth it for 20+ dents). Most minor hail repairs cost $500-$1,500 and can be completed in one day. According to NOAA, prompt repair prevents potential rust issues from developing in dented areas.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       14,
				MaxScore:       21,
				Title:          "Moderate Hail Damage",
				Description:    "Your vehicle has moderate hail damage that should still be repairable with PDR in most cases. The repair will require more time and expertise, but your vehicle can likely be restored to pre-storm condition.",
				Recommendation: "Definitely file an insurance claim - moderate hail repairs typically run $2,000-$5,000. Get a professional assessment before accepting any settlement. FEMA recommends documenting all damage thoroughly with photos before repairs begin. Request a certified PDR technician for best results.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       13,
				Title:          "Severe Hail Damage",
				Description:    "Your vehicle has severe hail damage that may approach or exceed total loss thresholds depending on vehicle value. Some panels may require conventional repair or replacement in addition to PDR.",
				Recommendation: "File your insurance claim immediately and get multiple professional assessments. Severe hail repairs can exceed $6,000-$10,000. If your vehicle is older or lower value, the insurance company may total it. According to the Insurance Information Institute, you have the right to choose your own repair shop and can negotiate the settlement.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "National Oceanic and Atmospheric Administration (NOAA)", URL: "https://www.noaa.gov", Description: "Hail storm data and vehicle damage statistics"},
			{Name: "Federal Emergency Management Agency (FEMA)", URL: "https://www.fema.gov", Description: "Storm damage documentation guidelines"},
			{Name: "Insurance Information Institute", URL: "https://www.iii.org", Description: "Comprehensive coverage and hail claim guidance"},
		},
		CTA: domain.CallToAction{Text: "Find Hail Repair Specialists", Link: "/find-technician"},
	}
}

func classicCarCompatibility() domain.Quiz {
	return domain.Quiz{
		Slug:        "classic-car-compatibility",
		Title:       "Classic Car Assessment",
		Description: "PDR Compatibility Evaluation",
		Questions: []domain.Question{
			{
				ID:       "vehicle-age",
				Text:     "What era is your classic car from?",
				HelpText: "Metal thickness and paint technology varied significantly by era.",
				Options: []domain.Option{
					{Label: "1980s-1990s (Modern classic)", Value: "modern", Points: 4},
					{Label: "1970s (Malaise era)", Value: "70s", Points: 3},
					{Label: "1960s (Muscle car era)", Value: "60s", Points: 3},
					{Label: "1950s or earlier (Vintage/antique)", Value: "vintage", Points: 1},
				},
			},
			{
				ID:       "paint-type",
				Text:     "What type of paint is on your classic car?",
				HelpText: "Original single-stage paints behave differently than modern clear coat.",
				Options: []domain.Option{
					{Label: "Modern repaint with clear coat", Value: "modern", Points: 4},
					{Label: "Quality single-stage restoration paint", Value: "quality-single", Points: 3},
					{Label: "Original paint (survivor car)", Value: "original", Points: 2},
					{Label: "Original lacquer or aged single-stage", Value: "lacquer", Points: 1},
				},
			},
			{
				ID:       "paint-condition",
				Text:     "What is the current condition of the paint?",
				HelpText: "Brittle or failing paint increases cracking risk during PDR.",
				Options: []domain.Option{
					{Label: "Excellent - supple, no checking or crazing", Value: "excellent", Points: 4},
					{Label: "Good - minor imperfections but solid", Value: "good", Points: 3},
					{Label: "Fair - some checking, oxidation, or thin spots", Value: "fair", Points: 1},
					{Label: "Poor - cracking, flaking, or bare spots", Value: "poor", Points: 0},
				},
			},
			{
				ID:       "body-construction",
				Text:     "What type of body construction does your car have?",
				HelpText: "Steel thickness and body-on-frame vs unibody affects PDR approach.",
				Options: []domain.Option{
					{Label: "Unibody with standard sheet metal", Value: "unibody", Points: 4},
					{Label: "Body-on-frame with moderate steel", Value: "body-frame", Points: 3},
					{Label: "Heavy gauge steel (pre-1960s)", Value: "heavy", Points: 2},
					{Label: "Aluminum, fiberglass, or exotic materials", Value: "exotic", Points: 1},
				},
			},
			{
				ID:       "dent-characteristics",
				Text:     "Describe the dent damage on your classic car.",
				HelpText: "Some dent types are better PDR candidates than others.",
				Options: []domain.Option{
					{Label: "Minor door dings or shopping cart dents", Value: "minor", Points: 4},
					{Label: "Medium dents without sharp creases", Value: "medium", Points: 3},
					{Label: "Dents with creases or on character lines", Value: "creased", Points: 1},
					{Label: "Large dents, hail damage, or stretched metal", Value: "severe", Points: 0},
				},
			},
			{
				ID:       "restoration-level",
				Text:     "What level of restoration/preservation is your car?",
				HelpText: "Concours and survivor cars have stricter requirements.",
				Options: []domain.Option{
					{Label: "Driver quality - enjoy and maintain", Value: "driver", Points: 4},
					{Label: "Show quality - but not concours judged", Value: "show", Points: 3},
					{Label: "Concours or judged show car", Value: "concours", Points: 2},
					{Label: "Survivor - preserving original condition", Value: "survivor", Points: 1},
				},
			},
			{
				ID:       "previous-work",
				Text:     "Has the damaged panel had previous body work?",
				HelpText: "Body filler under paint can crack during PDR.",
				Options: []domain.Option{
					{Label: "No - original metal with no repairs", Value: "original", Points: 4},
					{Label: "Minor repairs - no filler in dented area", Value: "minor", Points: 3},
					{Label: "Unknown - bought the car this way", Value: "unknown", Points: 2},
					{Label: "Yes - panel has body filler or lead work", Value: "filled", Points: 0},
				},
			},
		},
		Results: []domain.ResultTier{
			{
				MinScore:       22,
				MaxScore:       28,
				Title:          "Good Candidate for Classic Car PDR",
				Description:    "Your classic car appears to be a good candidate for paintless dent repair. The paint condition, metal type, and dent characteristics suggest PDR can be performed safely.",
				Recommendation: "Find a PDR technician with specific classic car experience - this is critical. The Hagerty Drivers Foundation emphasizes using specialists who understand vintage vehicle needs. Ask for before/after photos of their classic car work. Expect a higher price point than modern vehicles due to the care required. A skilled technician will know when to stop if the paint shows any stress.",
				Severity:       domain.SeverityPositive,
			},
			{
				MinScore:       13,
				MaxScore:       21,
				Title:          "Proceed with Caution",
				Description:    "Your classic car may be a PDR candidate, but there are factors that require careful evaluation. A hands-on assessment by a classic car specialist is essential.",
				Recommendation: "Before any work begins, have a classic car PDR specialist perform an in-person evaluation. The Antique Automobile Club of America recommends always getting written assessments for collector vehicles. Ask about test pushing in a hidden area first to verify paint flexibility. Get a clear understanding of what happens if paint cracking occurs. Document the car's current condition with detailed photos before any work.",
				Severity:       domain.SeverityCaution,
			},
			{
				MinScore:       0,
				MaxScore:       12,
				Title:          "PDR May Not Be Advisable",
				Description:    "Based on your classic car's characteristics, PDR carries significant risk. The paint type, age, previous body work, or damage type could lead to paint failure.",
				Recommendation: "Consider traditional metal finishing followed by repainting the panel. According to the Classic Car Club of America, preserving originality sometimes means accepting minor imperfections rather than risking further damage. For survivor cars, document the dent as part of the car's history. If you do attempt PDR, choose a specialist willing to stop immediately if paint stress appears and have a restoration plan ready.",
				Severity:       domain.SeverityNegative,
			},
		},
		Sources: []domain.Citation{
			{Name: "Hagerty Drivers Foundation", URL: "https://www.hagerty.com/drivers-foundation", Description: "Classic car preservation and restoration best practices"},
			{Name: "Antique Automobile Club of America (AACA)", URL: "https://www.aaca.org", Description: "Standards for antique vehicle judging and preservation"},
			{Name: "Classic Car Club of America", URL: "https://www.classiccarclub.org", Description: "Guidance on classic car maintenance and restoration"},
		},
		CTA: domain.CallToAction{Text: "Find Classic Car Specialists", Link: "/find-technician"},
	}
}
