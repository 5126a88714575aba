package enhance

import "regexp"

// Category is the generator type picked in the UI. The strings are part of
// the request contract and must match the front-end template ids exactly.
type Category string

const (
	CategoryAIImage      Category = "ai-image"
	CategoryActionFigure Category = "action-figure"
	CategoryGhibli       Category = "ghibli"
	CategoryCartoon      Category = "cartoon"
	CategoryMeme         Category = "meme"
	CategoryVideo        Category = "video"
	CategoryMusicStar    Category = "musicStar"
	CategoryRetro        Category = "retro"
	CategoryTVShow       Category = "tvShow"
	CategoryWrestling    Category = "wrestling"
)

// ImageType is the visual medium used to select style and lighting phrasing.
type ImageType string

const (
	TypePhotograph   ImageType = "photograph"
	TypeIllustration ImageType = "illustration"
	Type3DRender     ImageType = "3d-render"
	TypeDigitalArt   ImageType = "digital-art"
	TypeOilPainting  ImageType = "oil-painting"
	TypeWatercolor   ImageType = "watercolor"
	TypeVector       ImageType = "vector"
	TypePixelArt     ImageType = "pixel-art"
	TypeSketch       ImageType = "sketch"
	TypeAnime        ImageType = "anime"
)

// CompositionType classifies what kind of shot the prompt implies.
type CompositionType string

const (
	CompositionPortrait  CompositionType = "portrait"
	CompositionLandscape CompositionType = "landscape"
	CompositionProduct   CompositionType = "product"
	CompositionCharacter CompositionType = "character"
	CompositionAbstract  CompositionType = "abstract"
	CompositionScene     CompositionType = "scene"
)

// QualityTier selects how aggressive the quality phrasing is.
type QualityTier string

const (
	QualityStandard QualityTier = "standard"
	QualityHigh     QualityTier = "high"
	QualityUltra    QualityTier = "ultra"
)

// imageTypeKeywords is scanned in declaration order; the first type with any
// keyword present in the lowercased prompt wins.
var imageTypeKeywords = []struct {
	Type     ImageType
	Keywords []string
}{
	{TypePhotograph, []string{"photo", "photograph", "photorealistic", "dslr", "35mm"}},
	{TypeIllustration, []string{"illustration", "illustrated", "drawing", "hand-drawn"}},
	{Type3DRender, []string{"3d render", "3d model", "blender", "octane", "cgi"}},
	{TypeDigitalArt, []string{"digital art", "digital painting", "concept art"}},
	{TypeOilPainting, []string{"oil painting", "oil on canvas", "impasto"}},
	{TypeWatercolor, []string{"watercolor", "watercolour", "gouache"}},
	{TypeVector, []string{"vector", "flat design", "svg"}},
	{TypePixelArt, []string{"pixel art", "8-bit", "16-bit"}},
	{TypeSketch, []string{"sketch", "pencil drawing", "charcoal"}},
	{TypeAnime, []string{"anime", "manga", "ghibli"}},
}

// categoryDefaultType applies when no keyword matched and the caller did not
// declare a type.
var categoryDefaultType = map[Category]ImageType{
	CategoryAIImage:      TypeDigitalArt,
	CategoryActionFigure: TypePhotograph,
	CategoryGhibli:       TypeWatercolor,
	CategoryCartoon:      TypeIllustration,
	CategoryMeme:         TypePhotograph,
	CategoryVideo:        TypePhotograph,
	CategoryMusicStar:    TypePhotograph,
	CategoryRetro:        TypePixelArt,
	CategoryTVShow:       TypePhotograph,
	CategoryWrestling:    TypePhotograph,
}

const fallbackImageType = TypeDigitalArt

// compositionRules are evaluated first-match-wins so the priority order stays
// explicit; CompositionScene is the fallback.
var compositionRules = []struct {
	Pattern *regexp.Regexp
	Type    CompositionType
}{
	{regexp.MustCompile(`\b(portrait|headshot|face|selfie|bust)\b`), CompositionPortrait},
	{regexp.MustCompile(`\b(landscape|scenery|vista|horizon|mountains|valley|seascape|skyline)\b`), CompositionLandscape},
	{regexp.MustCompile(`\b(product|bottle|packaging|gadget|device|mockup)\b`), CompositionProduct},
	{regexp.MustCompile(`\b(character|figure|figurine|hero|warrior|robot|creature|mascot)\b`), CompositionCharacter},
	{regexp.MustCompile(`\b(abstract|pattern|geometric|fractal|gradient)\b`), CompositionAbstract},
}

// styleDescriptors is the phrase appended when the prompt never names its own
// medium.
var styleDescriptors = map[ImageType]string{
	TypePhotograph:   "professional photograph",
	TypeIllustration: "detailed illustration",
	Type3DRender:     "polished 3d render",
	TypeDigitalArt:   "refined digital art",
	TypeOilPainting:  "classical oil painting",
	TypeWatercolor:   "delicate watercolor painting",
	TypeVector:       "clean vector artwork",
	TypePixelArt:     "retro pixel art",
	TypeSketch:       "expressive pencil sketch",
	TypeAnime:        "vibrant anime artwork",
}

// typeNameWords is what we look for to decide the prompt already mentions its
// medium.
var typeNameWords = map[ImageType]string{
	TypePhotograph:   "photograph",
	TypeIllustration: "illustration",
	Type3DRender:     "3d render",
	TypeDigitalArt:   "digital art",
	TypeOilPainting:  "oil painting",
	TypeWatercolor:   "watercolor",
	TypeVector:       "vector",
	TypePixelArt:     "pixel art",
	TypeSketch:       "sketch",
	TypeAnime:        "anime",
}

type technicalSpec struct {
	Lighting string
	Quality  string
}

// technicalSpecs carries the per-category lighting and resolution phrasing.
// Categories without an entry fall back to genericLighting when the validator
// flags lighting as missing.
var technicalSpecs = map[Category]technicalSpec{
	CategoryActionFigure: {
		Lighting: "studio product lighting with soft shadows",
		Quality:  "8k resolution, sharp focus on molded details",
	},
	CategoryGhibli: {
		Lighting: "soft diffused daylight with warm highlights",
		Quality:  "hand-painted detail with subtle film grain",
	},
	CategoryCartoon: {
		Lighting: "flat even lighting with bold rim highlights",
		Quality:  "clean linework and crisp cel shading",
	},
	CategoryMeme: {
		Lighting: "bright even lighting",
		Quality:  "high contrast, bold readable composition",
	},
	CategoryMusicStar: {
		Lighting: "dramatic concert stage lighting with colored spotlights",
		Quality:  "8k resolution, glossy promotional finish",
	},
	CategoryRetro: {
		Lighting: "warm tungsten glow with a slight vignette",
		Quality:  "film grain and authentic analog texture",
	},
	CategoryTVShow: {
		Lighting: "cinematic three-point lighting",
		Quality:  "broadcast quality, sharp focus",
	},
	CategoryWrestling: {
		Lighting: "harsh arena spotlights with dramatic shadows",
		Quality:  "8k resolution, vivid action detail",
	},
}

var genericLighting = map[ImageType]string{
	TypePhotograph:   "natural lighting with balanced exposure",
	TypeIllustration: "soft ambient lighting",
	Type3DRender:     "global illumination with soft shadows",
	TypeDigitalArt:   "dramatic atmospheric lighting",
	TypeOilPainting:  "warm directional light in the classical manner",
	TypeWatercolor:   "gentle diffused light",
	TypeVector:       "flat uniform lighting",
	TypePixelArt:     "simple two-tone lighting",
	TypeSketch:       "single-source side lighting",
	TypeAnime:        "bright cel-shaded lighting",
}

var qualityModifiers = map[QualityTier]string{
	QualityStandard: "good quality, detailed",
	QualityHigh:     "high quality, highly detailed, sharp focus",
	QualityUltra:    "ultra high quality, extremely detailed, masterwork, 8k",
}

var compositionGuidance = map[CompositionType]string{
	CompositionPortrait:  "centered portrait composition with shallow depth of field",
	CompositionLandscape: "wide angle composition following the rule of thirds",
	CompositionProduct:   "clean centered product composition with generous negative space",
	CompositionCharacter: "full body framing from a slight low angle",
	CompositionAbstract:  "balanced asymmetric composition",
	CompositionScene:     "wide establishing shot with a clear focal point",
}

// categoryEnhancements are extra flavour phrases; at most three are appended
// and ones already present in the prompt are skipped.
var categoryEnhancements = map[Category][]string{
	CategoryActionFigure: {
		"collectible action figure in blister packaging",
		"accessories displayed beside the figure",
		"clear plastic window box with a printed card back",
	},
	CategoryGhibli: {
		"lush hand-painted backgrounds",
		"whimsical pastoral atmosphere",
		"gentle wind-swept grass and drifting clouds",
	},
	CategoryCartoon: {
		"bold outlines and exaggerated proportions",
		"expressive cartoon features",
		"saturated primary colors",
	},
	CategoryMeme: {
		"bold caption space at top and bottom",
		"instantly readable composition",
		"exaggerated comedic expression",
	},
	CategoryVideo: {
		"smooth cinematic motion",
		"dynamic camera movement",
	},
	CategoryMusicStar: {
		"stage presence of a chart-topping performer",
		"glittering stage outfit",
		"adoring crowd in the background",
	},
	CategoryRetro: {
		"1980s aesthetic",
		"vhs scanline texture",
		"neon chrome accents",
	},
	CategoryTVShow: {
		"episodic title-card framing",
		"ensemble cast staging",
	},
	CategoryWrestling: {
		"championship belt detail",
		"dynamic mid-action pose",
		"roaring arena crowd",
	},
}

// universalNegatives are excluded for every request that asks for a negative
// prompt.
var universalNegatives = []string{
	"blurry", "low quality", "distorted", "deformed", "watermark",
	"signature", "ugly", "poorly drawn", "bad anatomy", "disfigured",
	"out of frame",
}

var typeNegatives = map[ImageType][]string{
	TypePhotograph:   {"cartoon", "illustration", "painting", "anime", "cgi"},
	TypeIllustration: {"photorealistic", "photograph"},
	Type3DRender:     {"flat shading", "2d", "sketch lines"},
	TypeDigitalArt:   {"pixelated", "washed out"},
	TypeOilPainting:  {"digital artifacts", "flat colors"},
	TypeWatercolor:   {"harsh lines", "digital sharpness"},
	TypeVector:       {"photorealistic", "noisy texture"},
	TypePixelArt:     {"smooth gradients", "anti-aliasing"},
	TypeSketch:       {"full color", "paint strokes"},
	TypeAnime:        {"photorealistic", "3d render", "western cartoon"},
}

var categoryNegatives = map[Category][]string{
	CategoryActionFigure: {"broken joints", "messy paint application"},
	CategoryGhibli:       {"harsh shadows", "horror tones"},
	CategoryCartoon:      {"photorealistic skin"},
	CategoryMeme:         {"small text", "unreadable text"},
	CategoryMusicStar:    {"empty stage"},
	CategoryRetro:        {"modern ui elements"},
	CategoryWrestling:    {"empty arena"},
}

// styleLabels feed the expected-result sentence.
var styleLabels = map[Category]string{
	CategoryGhibli:  "Studio Ghibli",
	CategoryCartoon: "cartoon",
}

const defaultStyleLabel = "professional"
