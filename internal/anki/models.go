package anki

const deckCSS = `.card {
  font-family: arial;
  font-size: 20px;
  text-align: center;
  color: black;
  background-color: white;
}

.starred {
  color: red;
}
`

func noteTemplates() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":  "Listening",
			"ord":   0,
			"qfmt":  "Listen.{{Audio}}",
			"afmt":  "{{FrontSide}}\n\n<hr id=answer>\n\n{{Hanzi}}<br>\n{{Reading}}",
			"bqfmt": "",
			"bafmt": "",
			"did":   nil,
		},
		{
			"name":  "Reading",
			"ord":   1,
			"qfmt":  "{{Hanzi}}",
			"afmt":  "{{FrontSide}}\n\n<hr id=answer>\n\n{{Reading}}<br>\n{{Audio}}",
			"bqfmt": "",
			"bafmt": "",
			"did":   nil,
		},
	}
}

func modelFields(names []string) []map[string]interface{} {
	fields := make([]map[string]interface{}, 0, len(names))
	for i, name := range names {
		fields = append(fields, map[string]interface{}{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		})
	}
	return fields
}

func (g *Generator) model(id int64, name string, fieldNames []string, answerExtra string) map[string]interface{} {
	tmpls := noteTemplates()
	if answerExtra != "" {
		for _, t := range tmpls {
			t["afmt"] = t["afmt"].(string) + answerExtra
		}
	}
	return map[string]interface{}{
		"id":        id,
		"name":      name,
		"type":      0,
		"mod":       0,
		"usn":       0,
		"sortf":     1, // sort on Hanzi, not the timestamp
		"did":       g.config.DeckID,
		"tmpls":     tmpls,
		"flds":      modelFields(fieldNames),
		"css":       deckCSS,
		"latexPre":  "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n\\usepackage[utf8]{inputenc}\n\\usepackage{amssymb,amsmath}\n\\pagestyle{empty}\n\\setlength{\\parindent}{0in}\n\\begin{document}\n",
		"latexPost": "\\end{document}",
		"req":       [][]interface{}{{0, "any", []int{3}}, {1, "any", []int{1}}},
		"tags":      []string{},
		"vers":      []string{},
	}
}

func (g *Generator) wordModel() map[string]interface{} {
	return g.model(
		g.config.WordModelID,
		"Mandarin Word",
		[]string{"timestamp", "Hanzi", "Definition", "Audio", "Reading", "Similar Words"},
		"<br>\n{{Definition}}<br>\n{{Similar Words}}",
	)
}

func (g *Generator) sentenceModel() map[string]interface{} {
	return g.model(
		g.config.SentenceModelID,
		"Mandarin Sentence",
		[]string{"timestamp", "Hanzi", "Meaning", "Audio", "Reading"},
		"<br>\n{{Meaning}}",
	)
}
