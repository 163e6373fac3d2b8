package config

import "github.com/decker502/codexatlas/internal/constellation"

// DefaultExhibitConfig 返回默认展品配置
func DefaultExhibitConfig() *ExhibitConfig {
	return &ExhibitConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "Codex Atlanticus 2.0",
		},
		Constellation: ConstellationConfig{
			InteractionRadius:  constellation.DefaultInteractionRadius,
			RepulsionStrength:  constellation.DefaultRepulsionStrength,
			ConnectionDistance: constellation.DefaultConnectionDistance,
			ConnectionAlpha:    constellation.DefaultConnectionAlpha,
			ConnectionWidth:    constellation.DefaultConnectionWidth,
			ConnectionColor:    "#00f5ff",
			AreaPerParticle:    constellation.DefaultAreaPerParticle,
			MaxSpeed:           constellation.DefaultMaxSpeed,
			Radius:             Range{Min: 1, Max: 3},
			Opacity:            Range{Min: 0.3, Max: 0.8},
			Palette:            []string{"#00f5ff", "#d4a853", "#9d00ff"},
		},
		Navigation: NavigationConfig{
			ScrolledThreshold: 100,
			ScrollDuration:    0.6,
			WheelStep:         60,
		},
		Reveal: RevealConfig{
			Threshold:    0.1,
			BottomMargin: 100,
		},
		Heritage: HeritageConfig{
			Cards: []StoryCard{
				{ID: "origin", Title: "1478 - 1519", Body: "Quarante années de notes, de machines et d'études."},
				{ID: "danger", Title: "Le danger", Body: "Colles, restaurations et humidité menacent les folios."},
				{ID: "codex", Title: "Le Codex", Body: "1119 feuillets réunis, numérisés et archivés."},
			},
			BandMargin: 0.4,
		},
		Comparison: ComparisonConfig{
			Initial: 0.5,
			Min:     0.05,
			Max:     0.95,
			KeyStep: 0.05,
		},
		Terminal: TerminalConfig{
			LineDelay: 0.15,
			Lines:     defaultTerminalScript(),
		},
		Lens: LensConfig{Radius: 80},
		OAIS: OAISConfig{ProcessingDuration: 2.0},
		Counters: CountersConfig{
			Items: []Counter{
				{Label: "Folios", Target: 1119},
				{Label: "Pages numerisees", Target: 2238},
				{Label: "Tokens incertains", Target: 67},
			},
			Duration:      2.0,
			FrameInterval: 0.016,
			Threshold:     0.5,
		},
		Hotspots: HotspotsConfig{
			Items: []Hotspot{
				{ID: "mercury", X: 0.25, Y: 0.3, Title: "Taches de mercure", Body: "Oxydation des pigments métalliques."},
				{ID: "fold", X: 0.6, Y: 0.55, Title: "Pli central", Body: "Trace du montage du XVIe siècle."},
				{ID: "writing", X: 0.4, Y: 0.75, Title: "Écriture spéculaire", Body: "Texte écrit de droite à gauche."},
			},
			TooltipWidth:  320,
			TooltipHeight: 300,
			Margin:        20,
			Gap:           15,
		},
		Audio: AudioConfig{
			Ambient:       AudioTrack{ID: "ambient", Label: "Ambiance"},
			AmbientVolume: 0.3,
			Narrations: []AudioTrack{
				{ID: "narration-heritage", Label: "Histoire"},
				{ID: "narration-ai", Label: "Traduction"},
				{ID: "narration-oais", Label: "Archivage"},
			},
			PlaceholderDuration: 3.0,
		},
	}
}

// defaultTerminalScript 模拟"神经翻译流水线"的脚本（纯展示，不执行）
func defaultTerminalScript() []TerminalLine {
	return []TerminalLine{
		{"comment", "# Neural Translation Pipeline — Codex Atlanticus"},
		{"comment", "# Traitement de l'écriture spéculaire de Léonard"},
		{"import", "import torch"},
		{"import", "from transformers import AutoModelForSeq2Seq"},
		{"import", "from codex_utils import mirror_flip, preprocess_manuscript"},
		{"variable", ""},
		{"comment", "# Chargement du modèle entraîné sur l'italien médiéval"},
		{"variable", `model = AutoModelForSeq2Seq.from_pretrained("leonardo-translator-v2")`},
		{"variable", `tokenizer = AutoTokenizer.from_pretrained("medieval-italian-bert")`},
		{"variable", ""},
		{"comment", "# Prétraitement de l'image du manuscrit"},
		{"function", "def analyze_folio(image_path):"},
		{"variable", "    img = preprocess_manuscript(image_path)"},
		{"variable", "    flipped = mirror_flip(img)  # Inversion spéculaire"},
		{"variable", "    ocr_result = extract_text(flipped)"},
		{"keyword", "    return ocr_result"},
		{"variable", ""},
		{"comment", "# Analyse du Folio 1033r..."},
		{"variable", `text = analyze_folio("codex_atlanticus/folio_1033r.tiff")`},
		{"output", `>>> Texte extrait: "La sperientia non falla mai..."`},
		{"variable", ""},
		{"comment", "# Traduction vers le français moderne"},
		{"variable", "translation = model.generate(tokenizer.encode(text))"},
		{"output", `>>> Traduction: "L'expérience ne trompe jamais..."`},
		{"variable", ""},
		{"warning", "WARNING: Hallucination detected in mechanical gear generation."},
		{"warning", "  -> Human verification required before archival validation."},
		{"variable", ""},
		{"output", ">>> Confiance: 94.7% | 67 tokens incertains flaggés | Export OAIS/DIP/"},
	}
}
