package fx

// Input keys used by the built-in kinds.
const (
	KeyImage       = "inputImage"
	KeyCenter      = "inputCenter"
	KeyColor       = "inputColor"
	KeyColor0      = "inputColor0"
	KeyColor1      = "inputColor1"
	KeyWidth       = "inputWidth"
	KeySharpness   = "inputSharpness"
	KeyRadius      = "inputRadius"
	KeyRadius0     = "inputRadius0"
	KeyRadius1     = "inputRadius1"
	KeyPoint0      = "inputPoint0"
	KeyPoint1      = "inputPoint1"
	KeyText        = "inputText"
	KeyFontName    = "inputFontName"
	KeyFontSize    = "inputFontSize"
	KeyScaleFactor = "inputScaleFactor"
	KeyPadding     = "inputPadding"
	KeyRVector     = "inputRVector"
	KeyGVector     = "inputGVector"
	KeyBVector     = "inputBVector"
	KeyAVector     = "inputAVector"
	KeyBiasVector  = "inputBiasVector"
	KeyIntensity   = "inputIntensity"
	KeySaturation  = "inputSaturation"
	KeyBrightness  = "inputBrightness"
	KeyContrast    = "inputContrast"
	KeyScale       = "inputScale"
	KeyAspectRatio = "inputAspectRatio"
)

// imageInput is the input every image-consuming kind declares.
var imageInput = Input{Key: KeyImage, Type: TypeImage, Doc: "The image to process."}
