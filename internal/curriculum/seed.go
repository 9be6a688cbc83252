package curriculum

// seedSubjects is the built-in starter curriculum. It covers two GCSE
// subjects with a handful of topics each, enough to practice against
// without an external curriculum file.
var seedSubjects = []Subject{
	{
		ID:        "biology",
		Name:      "Biology",
		ExamBoard: "AQA",
		Topics: []Topic{
			{
				ID:   "bio-cell-structure",
				Name: "Cell Structure",
				Questions: []Question{
					{
						ID:    "bio-cs-01",
						Text:  "Describe two differences between a prokaryotic cell and a eukaryotic cell.",
						Marks: 2,
						ModelAnswer: "Prokaryotic cells have no nucleus; their DNA is free in the " +
							"cytoplasm as a single loop, often with plasmids. Eukaryotic cells are " +
							"larger and hold their DNA inside a membrane-bound nucleus.",
						MarkingCriteria: []string{
							"States that prokaryotic cells lack a nucleus / DNA is free in cytoplasm",
							"States that eukaryotic cells are larger or contain membrane-bound organelles",
						},
						SpecReference: "4.1.1.1",
					},
					{
						ID:    "bio-cs-02",
						Text:  "Explain why a root hair cell is adapted to its function.",
						Marks: 3,
						ModelAnswer: "The root hair increases the surface area of the cell so water " +
							"and mineral ions are absorbed faster. The cell has many mitochondria to " +
							"release energy for active transport of mineral ions against the " +
							"concentration gradient.",
						MarkingCriteria: []string{
							"Large surface area for absorption",
							"Absorbs water / mineral ions from soil",
							"Many mitochondria provide energy for active transport",
						},
						SpecReference: "4.1.1.2",
					},
					{
						ID:    "bio-cs-03",
						Text:  "Draw and label a diagram of an animal cell, showing the nucleus, cytoplasm and cell membrane.",
						Marks: 3,
						ModelAnswer: "A drawn cell with the nucleus, cytoplasm and cell membrane " +
							"clearly labelled.",
						MarkingCriteria: []string{
							"Nucleus drawn and labelled",
							"Cytoplasm labelled",
							"Cell membrane drawn as the outer boundary",
						},
						SpecReference: "4.1.1.1",
					},
					{
						ID:          "bio-cs-04",
						Text:        "Calculate the magnification of a cell image that is 25 mm wide when the real cell is 0.05 mm wide.",
						Marks:       2,
						ModelAnswer: "Magnification = image size / real size = 25 / 0.05 = x500.",
						MarkingCriteria: []string{
							"Uses magnification = image size / real size",
							"Correct answer of x500",
						},
						SpecReference: "4.1.1.5",
					},
				},
			},
			{
				ID:   "bio-photosynthesis",
				Name: "Photosynthesis",
				Questions: []Question{
					{
						ID:    "bio-ph-01",
						Text:  "Write the word equation for photosynthesis.",
						Marks: 2,
						ModelAnswer: "Carbon dioxide + water -> glucose + oxygen (in the presence " +
							"of light and chlorophyll).",
						MarkingCriteria: []string{
							"Correct reactants: carbon dioxide and water",
							"Correct products: glucose and oxygen",
						},
						SpecReference: "4.4.1.1",
					},
					{
						ID:    "bio-ph-02",
						Text:  "Explain how temperature affects the rate of photosynthesis.",
						Marks: 4,
						ModelAnswer: "As temperature rises, particles gain kinetic energy so " +
							"enzyme-controlled reactions speed up and the rate of photosynthesis " +
							"increases. Above the optimum temperature, enzymes denature: the active " +
							"site changes shape, reactions slow, and the rate falls sharply.",
						MarkingCriteria: []string{
							"Rate increases with temperature at first",
							"Links increase to kinetic energy / enzyme activity",
							"Rate falls above the optimum",
							"Explains fall by enzyme denaturation",
						},
						SpecReference: "4.4.1.2",
					},
					{
						ID:    "bio-ph-03",
						Text:  "Sketch a graph showing how light intensity affects the rate of photosynthesis.",
						Marks: 3,
						ModelAnswer: "A graph rising steeply from the origin then levelling off as " +
							"another factor becomes limiting.",
						MarkingCriteria: []string{
							"Rate rises as light intensity increases",
							"Curve levels off at high intensity",
							"Axes labelled correctly",
						},
						SpecReference: "4.4.1.2",
					},
				},
			},
		},
	},
	{
		ID:        "chemistry",
		Name:      "Chemistry",
		ExamBoard: "AQA",
		Topics: []Topic{
			{
				ID:   "chem-atomic-structure",
				Name: "Atomic Structure",
				Questions: []Question{
					{
						ID:          "chem-as-01",
						Text:        "State the relative charges of protons, neutrons and electrons.",
						Marks:       3,
						ModelAnswer: "Protons are +1, neutrons are 0, electrons are -1.",
						MarkingCriteria: []string{
							"Proton +1",
							"Neutron 0",
							"Electron -1",
						},
						SpecReference: "4.1.1.4",
					},
					{
						ID:    "chem-as-02",
						Text:  "An atom has 11 protons and 12 neutrons. Give its mass number and explain why the atom is neutral.",
						Marks: 3,
						ModelAnswer: "Mass number = 11 + 12 = 23. The atom is neutral because it has " +
							"11 electrons, so the positive charge of the protons is balanced by an " +
							"equal negative charge.",
						MarkingCriteria: []string{
							"Mass number 23",
							"Equal numbers of protons and electrons",
							"Charges cancel so overall charge is zero",
						},
						SpecReference: "4.1.1.5",
					},
					{
						ID:    "chem-as-03",
						Text:  "Explain why isotopes of the same element have identical chemical properties.",
						Marks: 2,
						ModelAnswer: "Isotopes have the same number of electrons and the same " +
							"electronic structure, and chemical properties depend on electrons.",
						MarkingCriteria: []string{
							"Same number / arrangement of electrons",
							"Chemical behaviour determined by electrons",
						},
						SpecReference: "4.1.1.6",
					},
				},
			},
			{
				ID:   "chem-bonding",
				Name: "Bonding and Structure",
				Questions: []Question{
					{
						ID:    "chem-bo-01",
						Text:  "Describe how an ionic bond forms between sodium and chlorine.",
						Marks: 3,
						ModelAnswer: "The sodium atom loses its outer electron to form a Na+ ion. " +
							"The chlorine atom gains that electron to form a Cl- ion. The oppositely " +
							"charged ions attract each other electrostatically.",
						MarkingCriteria: []string{
							"Sodium loses one electron forming a positive ion",
							"Chlorine gains one electron forming a negative ion",
							"Electrostatic attraction between the oppositely charged ions",
						},
						SpecReference: "4.2.1.1",
					},
					{
						ID:    "chem-bo-02",
						Text:  "Explain why graphite conducts electricity but diamond does not.",
						Marks: 3,
						ModelAnswer: "In graphite each carbon bonds to three others, leaving one " +
							"delocalised electron per atom free to move and carry charge. In diamond " +
							"every outer electron is held in one of four covalent bonds, so no " +
							"charge carriers are free to move.",
						MarkingCriteria: []string{
							"Graphite has delocalised electrons",
							"Delocalised electrons move and carry charge",
							"Diamond has no free electrons; all four are in covalent bonds",
						},
						SpecReference: "4.2.3.3",
					},
					{
						ID:    "chem-bo-03",
						Text:  "Complete the dot and cross diagram below to show the bonding in a chlorine molecule.",
						Marks: 2,
						ModelAnswer: "A shared pair of electrons shown between the two chlorine " +
							"atoms, with three non-bonding pairs on each atom.",
						MarkingCriteria: []string{
							"One shared pair shown",
							"Remaining outer electrons shown on each atom",
						},
						SpecReference: "4.2.1.4",
					},
				},
			},
		},
	},
}

func init() {
	r, err := buildRegistry(seedSubjects)
	if err != nil {
		panic("curriculum seed invalid: " + err.Error())
	}
	reg = r
}
