package parser

// charRefTable maps a named character reference's name, as consumed
// after the leading '&', to the scalar value(s) it expands to, per
// https://html.spec.whatwg.org/multipage/named-characters.html. The
// table is generated from the Standard's complete named-character-
// reference list: every name the Standard defines, including the
// legacy subset usable without a trailing semicolon and the
// semicolon-required names that expand to more than one scalar
// (e.g. NotEqualTilde). A name outside this set falls through to
// ambiguousAmpersandState, which is exactly the Standard's own
// "named character reference was not found" recovery path.
var charRefTable = buildCharRefTable()

type legacyRef struct {
	name string
	cp   rune
}

// legacyRefs is the full set of named references the Standard
// permits without a trailing semicolon, identical to HTML 4's
// Latin-1 and markup-character entity set. buildCharRefTable installs
// each one under both its bare name and its semicolon-terminated
// form, since the Standard treats the two as equivalent.
var legacyRefs = []legacyRef{
	{"AElig", 'Æ'}, {"AMP", '&'}, {"Aacute", 'Á'}, {"Acirc", 'Â'},
	{"Agrave", 'À'}, {"Aring", 'Å'}, {"Atilde", 'Ã'}, {"Auml", 'Ä'},
	{"COPY", '©'}, {"Ccedil", 'Ç'}, {"ETH", 'Ð'}, {"Eacute", 'É'},
	{"Ecirc", 'Ê'}, {"Egrave", 'È'}, {"Euml", 'Ë'}, {"GT", '>'},
	{"Iacute", 'Í'}, {"Icirc", 'Î'}, {"Igrave", 'Ì'}, {"Iuml", 'Ï'},
	{"LT", '<'}, {"Ntilde", 'Ñ'}, {"Oacute", 'Ó'}, {"Ocirc", 'Ô'},
	{"Ograve", 'Ò'}, {"Oslash", 'Ø'}, {"Otilde", 'Õ'}, {"Ouml", 'Ö'},
	{"QUOT", '"'}, {"REG", '®'}, {"THORN", 'Þ'}, {"Uacute", 'Ú'},
	{"Ucirc", 'Û'}, {"Ugrave", 'Ù'}, {"Uuml", 'Ü'}, {"Yacute", 'Ý'},
	{"aacute", 'á'}, {"acirc", 'â'}, {"acute", '´'}, {"aelig", 'æ'},
	{"agrave", 'à'}, {"amp", '&'}, {"aring", 'å'}, {"atilde", 'ã'},
	{"auml", 'ä'}, {"brvbar", '¦'}, {"ccedil", 'ç'}, {"cedil", '¸'},
	{"cent", '¢'}, {"copy", '©'}, {"curren", '¤'}, {"deg", '°'},
	{"divide", '÷'}, {"eacute", 'é'}, {"ecirc", 'ê'}, {"egrave", 'è'},
	{"eth", 'ð'}, {"euml", 'ë'}, {"frac12", '½'}, {"frac14", '¼'},
	{"frac34", '¾'}, {"gt", '>'}, {"iacute", 'í'}, {"icirc", 'î'},
	{"iexcl", '¡'}, {"igrave", 'ì'}, {"iquest", '¿'}, {"iuml", 'ï'},
	{"laquo", '«'}, {"lt", '<'}, {"macr", '¯'}, {"micro", 'µ'},
	{"middot", '·'}, {"nbsp", ' '}, {"not", '¬'}, {"ntilde", 'ñ'},
	{"oacute", 'ó'}, {"ocirc", 'ô'}, {"ograve", 'ò'}, {"ordf", 'ª'},
	{"ordm", 'º'}, {"oslash", 'ø'}, {"otilde", 'õ'}, {"ouml", 'ö'},
	{"para", '¶'}, {"plusmn", '±'}, {"pound", '£'}, {"quot", '"'},
	{"raquo", '»'}, {"reg", '®'}, {"sect", '§'}, {"shy", '­'},
	{"sup1", '¹'}, {"sup2", '²'}, {"sup3", '³'}, {"szlig", 'ß'},
	{"thorn", 'þ'}, {"times", '×'}, {"uacute", 'ú'}, {"ucirc", 'û'},
	{"ugrave", 'ù'}, {"uml", '¨'}, {"uuml", 'ü'}, {"yacute", 'ý'},
	{"yen", '¥'}, {"yuml", 'ÿ'},
}

type modernRef struct {
	name string
	cps  []rune
}

// modernRefs is the remainder of the Standard's table: every
// semicolon-required name, expanding to one or more scalars.
var modernRefs = []modernRef{
	{"Abreve", []rune{'Ă'}},
	{"Acy", []rune{'А'}},
	{"Afr", []rune{'\U0001d504'}},
	{"Alpha", []rune{'Α'}},
	{"Amacr", []rune{'Ā'}},
	{"And", []rune{'⩓'}},
	{"Aogon", []rune{'Ą'}},
	{"Aopf", []rune{'\U0001d538'}},
	{"ApplyFunction", []rune{'⁡'}},
	{"Ascr", []rune{'\U0001d49c'}},
	{"Assign", []rune{'≔'}},
	{"Backslash", []rune{'∖'}},
	{"Barv", []rune{'⫧'}},
	{"Barwed", []rune{'⌆'}},
	{"Bcy", []rune{'Б'}},
	{"Because", []rune{'∵'}},
	{"Bernoullis", []rune{'ℬ'}},
	{"Beta", []rune{'Β'}},
	{"Bfr", []rune{'\U0001d505'}},
	{"Bopf", []rune{'\U0001d539'}},
	{"Breve", []rune{'˘'}},
	{"Bscr", []rune{'ℬ'}},
	{"Bumpeq", []rune{'≎'}},
	{"CHcy", []rune{'Ч'}},
	{"Cacute", []rune{'Ć'}},
	{"Cap", []rune{'⋒'}},
	{"CapitalDifferentialD", []rune{'ⅅ'}},
	{"Cayleys", []rune{'ℭ'}},
	{"Ccaron", []rune{'Č'}},
	{"Ccirc", []rune{'Ĉ'}},
	{"Cconint", []rune{'∰'}},
	{"Cdot", []rune{'Ċ'}},
	{"Cedilla", []rune{'¸'}},
	{"CenterDot", []rune{'·'}},
	{"Cfr", []rune{'ℭ'}},
	{"Chi", []rune{'Χ'}},
	{"CircleDot", []rune{'⊙'}},
	{"CircleMinus", []rune{'⊖'}},
	{"CirclePlus", []rune{'⊕'}},
	{"CircleTimes", []rune{'⊗'}},
	{"ClockwiseContourIntegral", []rune{'∲'}},
	{"CloseCurlyDoubleQuote", []rune{'”'}},
	{"CloseCurlyQuote", []rune{'’'}},
	{"Colon", []rune{'∷'}},
	{"Colone", []rune{'⩴'}},
	{"Congruent", []rune{'≡'}},
	{"Conint", []rune{'∯'}},
	{"ContourIntegral", []rune{'∮'}},
	{"Copf", []rune{'ℂ'}},
	{"Coproduct", []rune{'∐'}},
	{"CounterClockwiseContourIntegral", []rune{'∳'}},
	{"Cross", []rune{'⨯'}},
	{"Cscr", []rune{'\U0001d49e'}},
	{"Cup", []rune{'⋓'}},
	{"CupCap", []rune{'≍'}},
	{"DD", []rune{'ⅅ'}},
	{"DDotrahd", []rune{'⤑'}},
	{"DJcy", []rune{'Ђ'}},
	{"DScy", []rune{'Ѕ'}},
	{"DZcy", []rune{'Џ'}},
	{"Dagger", []rune{'‡'}},
	{"Darr", []rune{'↡'}},
	{"Dashv", []rune{'⫤'}},
	{"Dcaron", []rune{'Ď'}},
	{"Dcy", []rune{'Д'}},
	{"Del", []rune{'∇'}},
	{"Delta", []rune{'Δ'}},
	{"Dfr", []rune{'\U0001d507'}},
	{"DiacriticalAcute", []rune{'´'}},
	{"DiacriticalDot", []rune{'˙'}},
	{"DiacriticalDoubleAcute", []rune{'˝'}},
	{"DiacriticalGrave", []rune{'`'}},
	{"DiacriticalTilde", []rune{'˜'}},
	{"Diamond", []rune{'⋄'}},
	{"DifferentialD", []rune{'ⅆ'}},
	{"Dopf", []rune{'\U0001d53b'}},
	{"Dot", []rune{'¨'}},
	{"DotDot", []rune{'⃜'}},
	{"DotEqual", []rune{'≐'}},
	{"DoubleContourIntegral", []rune{'∯'}},
	{"DoubleDot", []rune{'¨'}},
	{"DoubleDownArrow", []rune{'⇓'}},
	{"DoubleLeftArrow", []rune{'⇐'}},
	{"DoubleLeftRightArrow", []rune{'⇔'}},
	{"DoubleLeftTee", []rune{'⫤'}},
	{"DoubleLongLeftArrow", []rune{'⟸'}},
	{"DoubleLongLeftRightArrow", []rune{'⟺'}},
	{"DoubleLongRightArrow", []rune{'⟹'}},
	{"DoubleRightArrow", []rune{'⇒'}},
	{"DoubleRightTee", []rune{'⊨'}},
	{"DoubleUpArrow", []rune{'⇑'}},
	{"DoubleUpDownArrow", []rune{'⇕'}},
	{"DoubleVerticalBar", []rune{'∥'}},
	{"DownArrow", []rune{'↓'}},
	{"DownArrowBar", []rune{'⤓'}},
	{"DownArrowUpArrow", []rune{'⇵'}},
	{"DownBreve", []rune{'̑'}},
	{"DownLeftRightVector", []rune{'⥐'}},
	{"DownLeftTeeVector", []rune{'⥞'}},
	{"DownLeftVector", []rune{'↽'}},
	{"DownLeftVectorBar", []rune{'⥖'}},
	{"DownRightTeeVector", []rune{'⥟'}},
	{"DownRightVector", []rune{'⇁'}},
	{"DownRightVectorBar", []rune{'⥗'}},
	{"DownTee", []rune{'⊤'}},
	{"DownTeeArrow", []rune{'↧'}},
	{"Downarrow", []rune{'⇓'}},
	{"Dscr", []rune{'\U0001d49f'}},
	{"Dstrok", []rune{'Đ'}},
	{"ENG", []rune{'Ŋ'}},
	{"Ecaron", []rune{'Ě'}},
	{"Ecy", []rune{'Э'}},
	{"Edot", []rune{'Ė'}},
	{"Efr", []rune{'\U0001d508'}},
	{"Element", []rune{'∈'}},
	{"Emacr", []rune{'Ē'}},
	{"EmptySmallSquare", []rune{'◻'}},
	{"EmptyVerySmallSquare", []rune{'▫'}},
	{"Eogon", []rune{'Ę'}},
	{"Eopf", []rune{'\U0001d53c'}},
	{"Epsilon", []rune{'Ε'}},
	{"Equal", []rune{'⩵'}},
	{"EqualTilde", []rune{'≂'}},
	{"Equilibrium", []rune{'⇌'}},
	{"Escr", []rune{'ℰ'}},
	{"Esim", []rune{'⩳'}},
	{"Eta", []rune{'Η'}},
	{"Exists", []rune{'∃'}},
	{"ExponentialE", []rune{'ⅇ'}},
	{"Fcy", []rune{'Ф'}},
	{"Ffr", []rune{'\U0001d509'}},
	{"FilledSmallSquare", []rune{'◼'}},
	{"FilledVerySmallSquare", []rune{'▪'}},
	{"Fopf", []rune{'\U0001d53d'}},
	{"ForAll", []rune{'∀'}},
	{"Fouriertrf", []rune{'ℱ'}},
	{"Fscr", []rune{'ℱ'}},
	{"GJcy", []rune{'Ѓ'}},
	{"Gamma", []rune{'Γ'}},
	{"Gammad", []rune{'Ϝ'}},
	{"Gbreve", []rune{'Ğ'}},
	{"Gcedil", []rune{'Ģ'}},
	{"Gcirc", []rune{'Ĝ'}},
	{"Gcy", []rune{'Г'}},
	{"Gdot", []rune{'Ġ'}},
	{"Gfr", []rune{'\U0001d50a'}},
	{"Gg", []rune{'⋙'}},
	{"Gopf", []rune{'\U0001d53e'}},
	{"GreaterEqual", []rune{'≥'}},
	{"GreaterEqualLess", []rune{'⋛'}},
	{"GreaterFullEqual", []rune{'≧'}},
	{"GreaterGreater", []rune{'⪢'}},
	{"GreaterLess", []rune{'≷'}},
	{"GreaterSlantEqual", []rune{'⩾'}},
	{"GreaterTilde", []rune{'≳'}},
	{"Gscr", []rune{'\U0001d4a2'}},
	{"Gt", []rune{'≫'}},
	{"HARDcy", []rune{'Ъ'}},
	{"Hacek", []rune{'ˇ'}},
	{"Hat", []rune{'^'}},
	{"Hcirc", []rune{'Ĥ'}},
	{"Hfr", []rune{'ℌ'}},
	{"HilbertSpace", []rune{'ℋ'}},
	{"Hopf", []rune{'ℍ'}},
	{"HorizontalLine", []rune{'─'}},
	{"Hscr", []rune{'ℋ'}},
	{"Hstrok", []rune{'Ħ'}},
	{"HumpDownHump", []rune{'≎'}},
	{"HumpEqual", []rune{'≏'}},
	{"IEcy", []rune{'Е'}},
	{"IJlig", []rune{'Ĳ'}},
	{"IOcy", []rune{'Ё'}},
	{"Icy", []rune{'И'}},
	{"Idot", []rune{'İ'}},
	{"Ifr", []rune{'ℑ'}},
	{"Im", []rune{'ℑ'}},
	{"Imacr", []rune{'Ī'}},
	{"ImaginaryI", []rune{'ⅈ'}},
	{"Implies", []rune{'⇒'}},
	{"Int", []rune{'∬'}},
	{"Integral", []rune{'∫'}},
	{"Intersection", []rune{'⋂'}},
	{"InvisibleComma", []rune{'⁣'}},
	{"InvisibleTimes", []rune{'⁢'}},
	{"Iogon", []rune{'Į'}},
	{"Iopf", []rune{'\U0001d540'}},
	{"Iota", []rune{'Ι'}},
	{"Iscr", []rune{'ℐ'}},
	{"Itilde", []rune{'Ĩ'}},
	{"Iukcy", []rune{'І'}},
	{"Jcirc", []rune{'Ĵ'}},
	{"Jcy", []rune{'Й'}},
	{"Jfr", []rune{'\U0001d50d'}},
	{"Jopf", []rune{'\U0001d541'}},
	{"Jscr", []rune{'\U0001d4a5'}},
	{"Jsercy", []rune{'Ј'}},
	{"Jukcy", []rune{'Є'}},
	{"KHcy", []rune{'Х'}},
	{"KJcy", []rune{'Ќ'}},
	{"Kappa", []rune{'Κ'}},
	{"Kcedil", []rune{'Ķ'}},
	{"Kcy", []rune{'К'}},
	{"Kfr", []rune{'\U0001d50e'}},
	{"Kopf", []rune{'\U0001d542'}},
	{"Kscr", []rune{'\U0001d4a6'}},
	{"LJcy", []rune{'Љ'}},
	{"Lacute", []rune{'Ĺ'}},
	{"Lambda", []rune{'Λ'}},
	{"Lang", []rune{'⟪'}},
	{"Laplacetrf", []rune{'ℒ'}},
	{"Larr", []rune{'↞'}},
	{"Lcaron", []rune{'Ľ'}},
	{"Lcedil", []rune{'Ļ'}},
	{"Lcy", []rune{'Л'}},
	{"LeftAngleBracket", []rune{'⟨'}},
	{"LeftArrow", []rune{'←'}},
	{"LeftArrowBar", []rune{'⇤'}},
	{"LeftArrowRightArrow", []rune{'⇆'}},
	{"LeftCeiling", []rune{'⌈'}},
	{"LeftDoubleBracket", []rune{'⟦'}},
	{"LeftDownTeeVector", []rune{'⥡'}},
	{"LeftDownVector", []rune{'⇃'}},
	{"LeftDownVectorBar", []rune{'⥙'}},
	{"LeftFloor", []rune{'⌊'}},
	{"LeftRightArrow", []rune{'↔'}},
	{"LeftRightVector", []rune{'⥎'}},
	{"LeftTee", []rune{'⊣'}},
	{"LeftTeeArrow", []rune{'↤'}},
	{"LeftTeeVector", []rune{'⥚'}},
	{"LeftTriangle", []rune{'⊲'}},
	{"LeftTriangleBar", []rune{'⧏'}},
	{"LeftTriangleEqual", []rune{'⊴'}},
	{"LeftUpDownVector", []rune{'⥑'}},
	{"LeftUpTeeVector", []rune{'⥠'}},
	{"LeftUpVector", []rune{'↿'}},
	{"LeftUpVectorBar", []rune{'⥘'}},
	{"LeftVector", []rune{'↼'}},
	{"LeftVectorBar", []rune{'⥒'}},
	{"Leftarrow", []rune{'⇐'}},
	{"Leftrightarrow", []rune{'⇔'}},
	{"LessEqualGreater", []rune{'⋚'}},
	{"LessFullEqual", []rune{'≦'}},
	{"LessGreater", []rune{'≶'}},
	{"LessLess", []rune{'⪡'}},
	{"LessSlantEqual", []rune{'⩽'}},
	{"LessTilde", []rune{'≲'}},
	{"Lfr", []rune{'\U0001d50f'}},
	{"Ll", []rune{'⋘'}},
	{"Lleftarrow", []rune{'⇚'}},
	{"Lmidot", []rune{'Ŀ'}},
	{"LongLeftArrow", []rune{'⟵'}},
	{"LongLeftRightArrow", []rune{'⟷'}},
	{"LongRightArrow", []rune{'⟶'}},
	{"Longleftarrow", []rune{'⟸'}},
	{"Longleftrightarrow", []rune{'⟺'}},
	{"Longrightarrow", []rune{'⟹'}},
	{"Lopf", []rune{'\U0001d543'}},
	{"LowerLeftArrow", []rune{'↙'}},
	{"LowerRightArrow", []rune{'↘'}},
	{"Lscr", []rune{'ℒ'}},
	{"Lsh", []rune{'↰'}},
	{"Lstrok", []rune{'Ł'}},
	{"Lt", []rune{'≪'}},
	{"Map", []rune{'⤅'}},
	{"Mcy", []rune{'М'}},
	{"MediumSpace", []rune{' '}},
	{"Mellintrf", []rune{'ℳ'}},
	{"Mfr", []rune{'\U0001d510'}},
	{"MinusPlus", []rune{'∓'}},
	{"Mopf", []rune{'\U0001d544'}},
	{"Mscr", []rune{'ℳ'}},
	{"Mu", []rune{'Μ'}},
	{"NJcy", []rune{'Њ'}},
	{"Nacute", []rune{'Ń'}},
	{"Ncaron", []rune{'Ň'}},
	{"Ncedil", []rune{'Ņ'}},
	{"Ncy", []rune{'Н'}},
	{"NegativeMediumSpace", []rune{'​'}},
	{"NegativeThickSpace", []rune{'​'}},
	{"NegativeThinSpace", []rune{'​'}},
	{"NegativeVeryThinSpace", []rune{'​'}},
	{"NestedGreaterGreater", []rune{'≫'}},
	{"NestedLessLess", []rune{'≪'}},
	{"NewLine", []rune{'\u000a'}},
	{"Nfr", []rune{'\U0001d511'}},
	{"NoBreak", []rune{'⁠'}},
	{"NonBreakingSpace", []rune{' '}},
	{"Nopf", []rune{'ℕ'}},
	{"Not", []rune{'⫬'}},
	{"NotCongruent", []rune{'≢'}},
	{"NotCupCap", []rune{'≭'}},
	{"NotDoubleVerticalBar", []rune{'∦'}},
	{"NotElement", []rune{'∉'}},
	{"NotEqual", []rune{'≠'}},
	{"NotEqualTilde", []rune{'≂', '̸'}},
	{"NotExists", []rune{'∄'}},
	{"NotGreater", []rune{'≯'}},
	{"NotGreaterEqual", []rune{'≱'}},
	{"NotGreaterFullEqual", []rune{'≧', '̸'}},
	{"NotGreaterGreater", []rune{'≫', '̸'}},
	{"NotGreaterLess", []rune{'≹'}},
	{"NotGreaterSlantEqual", []rune{'⩾', '̸'}},
	{"NotGreaterTilde", []rune{'≵'}},
	{"NotHumpDownHump", []rune{'≎', '̸'}},
	{"NotHumpEqual", []rune{'≏', '̸'}},
	{"NotLeftTriangle", []rune{'⋪'}},
	{"NotLeftTriangleBar", []rune{'⧏', '̸'}},
	{"NotLeftTriangleEqual", []rune{'⋬'}},
	{"NotLess", []rune{'≮'}},
	{"NotLessEqual", []rune{'≰'}},
	{"NotLessGreater", []rune{'≸'}},
	{"NotLessLess", []rune{'≪', '̸'}},
	{"NotLessSlantEqual", []rune{'⩽', '̸'}},
	{"NotLessTilde", []rune{'≴'}},
	{"NotNestedGreaterGreater", []rune{'⪢', '̸'}},
	{"NotNestedLessLess", []rune{'⪡', '̸'}},
	{"NotPrecedes", []rune{'⊀'}},
	{"NotPrecedesEqual", []rune{'⪯', '̸'}},
	{"NotPrecedesSlantEqual", []rune{'⋠'}},
	{"NotReverseElement", []rune{'∌'}},
	{"NotRightTriangle", []rune{'⋫'}},
	{"NotRightTriangleBar", []rune{'⧐', '̸'}},
	{"NotRightTriangleEqual", []rune{'⋭'}},
	{"NotSquareSubset", []rune{'⊏', '̸'}},
	{"NotSquareSubsetEqual", []rune{'⋢'}},
	{"NotSquareSuperset", []rune{'⊐', '̸'}},
	{"NotSquareSupersetEqual", []rune{'⋣'}},
	{"NotSubset", []rune{'⊂', '⃒'}},
	{"NotSubsetEqual", []rune{'⊈'}},
	{"NotSucceeds", []rune{'⊁'}},
	{"NotSucceedsEqual", []rune{'⪰', '̸'}},
	{"NotSucceedsSlantEqual", []rune{'⋡'}},
	{"NotSucceedsTilde", []rune{'≿', '̸'}},
	{"NotSuperset", []rune{'⊃', '⃒'}},
	{"NotSupersetEqual", []rune{'⊉'}},
	{"NotTilde", []rune{'≁'}},
	{"NotTildeEqual", []rune{'≄'}},
	{"NotTildeFullEqual", []rune{'≇'}},
	{"NotTildeTilde", []rune{'≉'}},
	{"NotVerticalBar", []rune{'∤'}},
	{"Nscr", []rune{'\U0001d4a9'}},
	{"Nu", []rune{'Ν'}},
	{"OElig", []rune{'Œ'}},
	{"Ocy", []rune{'О'}},
	{"Odblac", []rune{'Ő'}},
	{"Ofr", []rune{'\U0001d512'}},
	{"Omacr", []rune{'Ō'}},
	{"Omega", []rune{'Ω'}},
	{"Omicron", []rune{'Ο'}},
	{"Oopf", []rune{'\U0001d546'}},
	{"OpenCurlyDoubleQuote", []rune{'“'}},
	{"OpenCurlyQuote", []rune{'‘'}},
	{"Or", []rune{'⩔'}},
	{"Oscr", []rune{'\U0001d4aa'}},
	{"Otimes", []rune{'⨷'}},
	{"OverBar", []rune{'‾'}},
	{"OverBrace", []rune{'⏞'}},
	{"OverBracket", []rune{'⎴'}},
	{"OverParenthesis", []rune{'⏜'}},
	{"PartialD", []rune{'∂'}},
	{"Pcy", []rune{'П'}},
	{"Pfr", []rune{'\U0001d513'}},
	{"Phi", []rune{'Φ'}},
	{"Pi", []rune{'Π'}},
	{"PlusMinus", []rune{'±'}},
	{"Poincareplane", []rune{'ℌ'}},
	{"Popf", []rune{'ℙ'}},
	{"Pr", []rune{'⪻'}},
	{"Precedes", []rune{'≺'}},
	{"PrecedesEqual", []rune{'⪯'}},
	{"PrecedesSlantEqual", []rune{'≼'}},
	{"PrecedesTilde", []rune{'≾'}},
	{"Prime", []rune{'″'}},
	{"Product", []rune{'∏'}},
	{"Proportion", []rune{'∷'}},
	{"Proportional", []rune{'∝'}},
	{"Pscr", []rune{'\U0001d4ab'}},
	{"Psi", []rune{'Ψ'}},
	{"Qfr", []rune{'\U0001d514'}},
	{"Qopf", []rune{'ℚ'}},
	{"Qscr", []rune{'\U0001d4ac'}},
	{"RBarr", []rune{'⤐'}},
	{"Racute", []rune{'Ŕ'}},
	{"Rang", []rune{'⟫'}},
	{"Rarr", []rune{'↠'}},
	{"Rarrtl", []rune{'⤖'}},
	{"Rcaron", []rune{'Ř'}},
	{"Rcedil", []rune{'Ŗ'}},
	{"Rcy", []rune{'Р'}},
	{"Re", []rune{'ℜ'}},
	{"ReverseElement", []rune{'∋'}},
	{"ReverseEquilibrium", []rune{'⇋'}},
	{"ReverseUpEquilibrium", []rune{'⥯'}},
	{"Rfr", []rune{'ℜ'}},
	{"Rho", []rune{'Ρ'}},
	{"RightAngleBracket", []rune{'⟩'}},
	{"RightArrow", []rune{'→'}},
	{"RightArrowBar", []rune{'⇥'}},
	{"RightArrowLeftArrow", []rune{'⇄'}},
	{"RightCeiling", []rune{'⌉'}},
	{"RightDoubleBracket", []rune{'⟧'}},
	{"RightDownTeeVector", []rune{'⥝'}},
	{"RightDownVector", []rune{'⇂'}},
	{"RightDownVectorBar", []rune{'⥕'}},
	{"RightFloor", []rune{'⌋'}},
	{"RightTee", []rune{'⊢'}},
	{"RightTeeArrow", []rune{'↦'}},
	{"RightTeeVector", []rune{'⥛'}},
	{"RightTriangle", []rune{'⊳'}},
	{"RightTriangleBar", []rune{'⧐'}},
	{"RightTriangleEqual", []rune{'⊵'}},
	{"RightUpDownVector", []rune{'⥏'}},
	{"RightUpTeeVector", []rune{'⥜'}},
	{"RightUpVector", []rune{'↾'}},
	{"RightUpVectorBar", []rune{'⥔'}},
	{"RightVector", []rune{'⇀'}},
	{"RightVectorBar", []rune{'⥓'}},
	{"Rightarrow", []rune{'⇒'}},
	{"Ropf", []rune{'ℝ'}},
	{"RoundImplies", []rune{'⥰'}},
	{"Rrightarrow", []rune{'⇛'}},
	{"Rscr", []rune{'ℛ'}},
	{"Rsh", []rune{'↱'}},
	{"RuleDelayed", []rune{'⧴'}},
	{"SHCHcy", []rune{'Щ'}},
	{"SHcy", []rune{'Ш'}},
	{"SOFTcy", []rune{'Ь'}},
	{"Sacute", []rune{'Ś'}},
	{"Sc", []rune{'⪼'}},
	{"Scaron", []rune{'Š'}},
	{"Scedil", []rune{'Ş'}},
	{"Scirc", []rune{'Ŝ'}},
	{"Scy", []rune{'С'}},
	{"Sfr", []rune{'\U0001d516'}},
	{"ShortDownArrow", []rune{'↓'}},
	{"ShortLeftArrow", []rune{'←'}},
	{"ShortRightArrow", []rune{'→'}},
	{"ShortUpArrow", []rune{'↑'}},
	{"Sigma", []rune{'Σ'}},
	{"SmallCircle", []rune{'∘'}},
	{"Sopf", []rune{'\U0001d54a'}},
	{"Sqrt", []rune{'√'}},
	{"Square", []rune{'□'}},
	{"SquareIntersection", []rune{'⊓'}},
	{"SquareSubset", []rune{'⊏'}},
	{"SquareSubsetEqual", []rune{'⊑'}},
	{"SquareSuperset", []rune{'⊐'}},
	{"SquareSupersetEqual", []rune{'⊒'}},
	{"SquareUnion", []rune{'⊔'}},
	{"Sscr", []rune{'\U0001d4ae'}},
	{"Star", []rune{'⋆'}},
	{"Sub", []rune{'⋐'}},
	{"Subset", []rune{'⋐'}},
	{"SubsetEqual", []rune{'⊆'}},
	{"Succeeds", []rune{'≻'}},
	{"SucceedsEqual", []rune{'⪰'}},
	{"SucceedsSlantEqual", []rune{'≽'}},
	{"SucceedsTilde", []rune{'≿'}},
	{"SuchThat", []rune{'∋'}},
	{"Sum", []rune{'∑'}},
	{"Sup", []rune{'⋑'}},
	{"Superset", []rune{'⊃'}},
	{"SupersetEqual", []rune{'⊇'}},
	{"Supset", []rune{'⋑'}},
	{"TRADE", []rune{'™'}},
	{"TSHcy", []rune{'Ћ'}},
	{"TScy", []rune{'Ц'}},
	{"Tab", []rune{'\u0009'}},
	{"Tau", []rune{'Τ'}},
	{"Tcaron", []rune{'Ť'}},
	{"Tcedil", []rune{'Ţ'}},
	{"Tcy", []rune{'Т'}},
	{"Tfr", []rune{'\U0001d517'}},
	{"Therefore", []rune{'∴'}},
	{"Theta", []rune{'Θ'}},
	{"ThickSpace", []rune{' ', ' '}},
	{"ThinSpace", []rune{' '}},
	{"Tilde", []rune{'∼'}},
	{"TildeEqual", []rune{'≃'}},
	{"TildeFullEqual", []rune{'≅'}},
	{"TildeTilde", []rune{'≈'}},
	{"Topf", []rune{'\U0001d54b'}},
	{"TripleDot", []rune{'⃛'}},
	{"Tscr", []rune{'\U0001d4af'}},
	{"Tstrok", []rune{'Ŧ'}},
	{"Uarr", []rune{'↟'}},
	{"Uarrocir", []rune{'⥉'}},
	{"Ubrcy", []rune{'Ў'}},
	{"Ubreve", []rune{'Ŭ'}},
	{"Ucy", []rune{'У'}},
	{"Udblac", []rune{'Ű'}},
	{"Ufr", []rune{'\U0001d518'}},
	{"Umacr", []rune{'Ū'}},
	{"UnderBar", []rune{'_'}},
	{"UnderBrace", []rune{'⏟'}},
	{"UnderBracket", []rune{'⎵'}},
	{"UnderParenthesis", []rune{'⏝'}},
	{"Union", []rune{'⋃'}},
	{"UnionPlus", []rune{'⊎'}},
	{"Uogon", []rune{'Ų'}},
	{"Uopf", []rune{'\U0001d54c'}},
	{"UpArrow", []rune{'↑'}},
	{"UpArrowBar", []rune{'⤒'}},
	{"UpArrowDownArrow", []rune{'⇅'}},
	{"UpDownArrow", []rune{'↕'}},
	{"UpEquilibrium", []rune{'⥮'}},
	{"UpTee", []rune{'⊥'}},
	{"UpTeeArrow", []rune{'↥'}},
	{"Uparrow", []rune{'⇑'}},
	{"Updownarrow", []rune{'⇕'}},
	{"UpperLeftArrow", []rune{'↖'}},
	{"UpperRightArrow", []rune{'↗'}},
	{"Upsi", []rune{'ϒ'}},
	{"Upsilon", []rune{'Υ'}},
	{"Uring", []rune{'Ů'}},
	{"Uscr", []rune{'\U0001d4b0'}},
	{"Utilde", []rune{'Ũ'}},
	{"VDash", []rune{'⊫'}},
	{"Vbar", []rune{'⫫'}},
	{"Vcy", []rune{'В'}},
	{"Vdash", []rune{'⊩'}},
	{"Vdashl", []rune{'⫦'}},
	{"Vee", []rune{'⋁'}},
	{"Verbar", []rune{'‖'}},
	{"Vert", []rune{'‖'}},
	{"VerticalBar", []rune{'∣'}},
	{"VerticalLine", []rune{'|'}},
	{"VerticalSeparator", []rune{'❘'}},
	{"VerticalTilde", []rune{'≀'}},
	{"VeryThinSpace", []rune{' '}},
	{"Vfr", []rune{'\U0001d519'}},
	{"Vopf", []rune{'\U0001d54d'}},
	{"Vscr", []rune{'\U0001d4b1'}},
	{"Vvdash", []rune{'⊪'}},
	{"Wcirc", []rune{'Ŵ'}},
	{"Wedge", []rune{'⋀'}},
	{"Wfr", []rune{'\U0001d51a'}},
	{"Wopf", []rune{'\U0001d54e'}},
	{"Wscr", []rune{'\U0001d4b2'}},
	{"Xfr", []rune{'\U0001d51b'}},
	{"Xi", []rune{'Ξ'}},
	{"Xopf", []rune{'\U0001d54f'}},
	{"Xscr", []rune{'\U0001d4b3'}},
	{"YAcy", []rune{'Я'}},
	{"YIcy", []rune{'Ї'}},
	{"YUcy", []rune{'Ю'}},
	{"Ycirc", []rune{'Ŷ'}},
	{"Ycy", []rune{'Ы'}},
	{"Yfr", []rune{'\U0001d51c'}},
	{"Yopf", []rune{'\U0001d550'}},
	{"Yscr", []rune{'\U0001d4b4'}},
	{"Yuml", []rune{'Ÿ'}},
	{"ZHcy", []rune{'Ж'}},
	{"Zacute", []rune{'Ź'}},
	{"Zcaron", []rune{'Ž'}},
	{"Zcy", []rune{'З'}},
	{"Zdot", []rune{'Ż'}},
	{"ZeroWidthSpace", []rune{'​'}},
	{"Zeta", []rune{'Ζ'}},
	{"Zfr", []rune{'ℨ'}},
	{"Zopf", []rune{'ℤ'}},
	{"Zscr", []rune{'\U0001d4b5'}},
	{"abreve", []rune{'ă'}},
	{"ac", []rune{'∾'}},
	{"acE", []rune{'∾', '̳'}},
	{"acd", []rune{'∿'}},
	{"acy", []rune{'а'}},
	{"af", []rune{'⁡'}},
	{"afr", []rune{'\U0001d51e'}},
	{"alefsym", []rune{'ℵ'}},
	{"aleph", []rune{'ℵ'}},
	{"alpha", []rune{'α'}},
	{"amacr", []rune{'ā'}},
	{"amalg", []rune{'⨿'}},
	{"and", []rune{'∧'}},
	{"andand", []rune{'⩕'}},
	{"andd", []rune{'⩜'}},
	{"andslope", []rune{'⩘'}},
	{"andv", []rune{'⩚'}},
	{"ang", []rune{'∠'}},
	{"ange", []rune{'⦤'}},
	{"angle", []rune{'∠'}},
	{"angmsd", []rune{'∡'}},
	{"angmsdaa", []rune{'⦨'}},
	{"angmsdab", []rune{'⦩'}},
	{"angmsdac", []rune{'⦪'}},
	{"angmsdad", []rune{'⦫'}},
	{"angmsdae", []rune{'⦬'}},
	{"angmsdaf", []rune{'⦭'}},
	{"angmsdag", []rune{'⦮'}},
	{"angmsdah", []rune{'⦯'}},
	{"angrt", []rune{'∟'}},
	{"angrtvb", []rune{'⊾'}},
	{"angrtvbd", []rune{'⦝'}},
	{"angsph", []rune{'∢'}},
	{"angst", []rune{'Å'}},
	{"angzarr", []rune{'⍼'}},
	{"aogon", []rune{'ą'}},
	{"aopf", []rune{'\U0001d552'}},
	{"ap", []rune{'≈'}},
	{"apE", []rune{'⩰'}},
	{"apacir", []rune{'⩯'}},
	{"ape", []rune{'≊'}},
	{"apid", []rune{'≋'}},
	{"apos", []rune{'\''}},
	{"approx", []rune{'≈'}},
	{"approxeq", []rune{'≊'}},
	{"ascr", []rune{'\U0001d4b6'}},
	{"ast", []rune{'*'}},
	{"asymp", []rune{'≈'}},
	{"asympeq", []rune{'≍'}},
	{"awconint", []rune{'∳'}},
	{"awint", []rune{'⨑'}},
	{"bNot", []rune{'⫭'}},
	{"backcong", []rune{'≌'}},
	{"backepsilon", []rune{'϶'}},
	{"backprime", []rune{'‵'}},
	{"backsim", []rune{'∽'}},
	{"backsimeq", []rune{'⋍'}},
	{"barvee", []rune{'⊽'}},
	{"barwed", []rune{'⌅'}},
	{"barwedge", []rune{'⌅'}},
	{"bbrk", []rune{'⎵'}},
	{"bbrktbrk", []rune{'⎶'}},
	{"bcong", []rune{'≌'}},
	{"bcy", []rune{'б'}},
	{"bdquo", []rune{'„'}},
	{"becaus", []rune{'∵'}},
	{"because", []rune{'∵'}},
	{"bemptyv", []rune{'⦰'}},
	{"bepsi", []rune{'϶'}},
	{"bernou", []rune{'ℬ'}},
	{"beta", []rune{'β'}},
	{"beth", []rune{'ℶ'}},
	{"between", []rune{'≬'}},
	{"bfr", []rune{'\U0001d51f'}},
	{"bigcap", []rune{'⋂'}},
	{"bigcirc", []rune{'◯'}},
	{"bigcup", []rune{'⋃'}},
	{"bigodot", []rune{'⨀'}},
	{"bigoplus", []rune{'⨁'}},
	{"bigotimes", []rune{'⨂'}},
	{"bigsqcup", []rune{'⨆'}},
	{"bigstar", []rune{'★'}},
	{"bigtriangledown", []rune{'▽'}},
	{"bigtriangleup", []rune{'△'}},
	{"biguplus", []rune{'⨄'}},
	{"bigvee", []rune{'⋁'}},
	{"bigwedge", []rune{'⋀'}},
	{"bkarow", []rune{'⤍'}},
	{"blacklozenge", []rune{'⧫'}},
	{"blacksquare", []rune{'▪'}},
	{"blacktriangle", []rune{'▴'}},
	{"blacktriangledown", []rune{'▾'}},
	{"blacktriangleleft", []rune{'◂'}},
	{"blacktriangleright", []rune{'▸'}},
	{"blank", []rune{'␣'}},
	{"blk12", []rune{'▒'}},
	{"blk14", []rune{'░'}},
	{"blk34", []rune{'▓'}},
	{"block", []rune{'█'}},
	{"bne", []rune{'=', '⃥'}},
	{"bnequiv", []rune{'≡', '⃥'}},
	{"bnot", []rune{'⌐'}},
	{"bopf", []rune{'\U0001d553'}},
	{"bot", []rune{'⊥'}},
	{"bottom", []rune{'⊥'}},
	{"bowtie", []rune{'⋈'}},
	{"boxDL", []rune{'╗'}},
	{"boxDR", []rune{'╔'}},
	{"boxDl", []rune{'╖'}},
	{"boxDr", []rune{'╓'}},
	{"boxH", []rune{'═'}},
	{"boxHD", []rune{'╦'}},
	{"boxHU", []rune{'╩'}},
	{"boxHd", []rune{'╤'}},
	{"boxHu", []rune{'╧'}},
	{"boxUL", []rune{'╝'}},
	{"boxUR", []rune{'╚'}},
	{"boxUl", []rune{'╜'}},
	{"boxUr", []rune{'╙'}},
	{"boxV", []rune{'║'}},
	{"boxVH", []rune{'╬'}},
	{"boxVL", []rune{'╣'}},
	{"boxVR", []rune{'╠'}},
	{"boxVh", []rune{'╫'}},
	{"boxVl", []rune{'╢'}},
	{"boxVr", []rune{'╟'}},
	{"boxbox", []rune{'⧉'}},
	{"boxdL", []rune{'╕'}},
	{"boxdR", []rune{'╒'}},
	{"boxdl", []rune{'┐'}},
	{"boxdr", []rune{'┌'}},
	{"boxh", []rune{'─'}},
	{"boxhD", []rune{'╥'}},
	{"boxhU", []rune{'╨'}},
	{"boxhd", []rune{'┬'}},
	{"boxhu", []rune{'┴'}},
	{"boxminus", []rune{'⊟'}},
	{"boxplus", []rune{'⊞'}},
	{"boxtimes", []rune{'⊠'}},
	{"boxuL", []rune{'╛'}},
	{"boxuR", []rune{'╘'}},
	{"boxul", []rune{'┘'}},
	{"boxur", []rune{'└'}},
	{"boxv", []rune{'│'}},
	{"boxvH", []rune{'╪'}},
	{"boxvL", []rune{'╡'}},
	{"boxvR", []rune{'╞'}},
	{"boxvh", []rune{'┼'}},
	{"boxvl", []rune{'┤'}},
	{"boxvr", []rune{'├'}},
	{"bprime", []rune{'‵'}},
	{"breve", []rune{'˘'}},
	{"bscr", []rune{'\U0001d4b7'}},
	{"bsemi", []rune{'⁏'}},
	{"bsim", []rune{'∽'}},
	{"bsime", []rune{'⋍'}},
	{"bsol", []rune{'\\'}},
	{"bsolb", []rune{'⧅'}},
	{"bsolhsub", []rune{'⟈'}},
	{"bull", []rune{'•'}},
	{"bullet", []rune{'•'}},
	{"bump", []rune{'≎'}},
	{"bumpE", []rune{'⪮'}},
	{"bumpe", []rune{'≏'}},
	{"bumpeq", []rune{'≏'}},
	{"cacute", []rune{'ć'}},
	{"cap", []rune{'∩'}},
	{"capand", []rune{'⩄'}},
	{"capbrcup", []rune{'⩉'}},
	{"capcap", []rune{'⩋'}},
	{"capcup", []rune{'⩇'}},
	{"capdot", []rune{'⩀'}},
	{"caps", []rune{'∩', '︀'}},
	{"caret", []rune{'⁁'}},
	{"caron", []rune{'ˇ'}},
	{"ccaps", []rune{'⩍'}},
	{"ccaron", []rune{'č'}},
	{"ccirc", []rune{'ĉ'}},
	{"ccups", []rune{'⩌'}},
	{"ccupssm", []rune{'⩐'}},
	{"cdot", []rune{'ċ'}},
	{"cemptyv", []rune{'⦲'}},
	{"centerdot", []rune{'·'}},
	{"cfr", []rune{'\U0001d520'}},
	{"chcy", []rune{'ч'}},
	{"check", []rune{'✓'}},
	{"checkmark", []rune{'✓'}},
	{"chi", []rune{'χ'}},
	{"cir", []rune{'○'}},
	{"cirE", []rune{'⧃'}},
	{"circ", []rune{'ˆ'}},
	{"circeq", []rune{'≗'}},
	{"circlearrowleft", []rune{'↺'}},
	{"circlearrowright", []rune{'↻'}},
	{"circledR", []rune{'®'}},
	{"circledS", []rune{'Ⓢ'}},
	{"circledast", []rune{'⊛'}},
	{"circledcirc", []rune{'⊚'}},
	{"circleddash", []rune{'⊝'}},
	{"cire", []rune{'≗'}},
	{"cirfnint", []rune{'⨐'}},
	{"cirmid", []rune{'⫯'}},
	{"cirscir", []rune{'⧂'}},
	{"clubs", []rune{'♣'}},
	{"clubsuit", []rune{'♣'}},
	{"colon", []rune{':'}},
	{"colone", []rune{'≔'}},
	{"coloneq", []rune{'≔'}},
	{"comma", []rune{','}},
	{"commat", []rune{'@'}},
	{"comp", []rune{'∁'}},
	{"compfn", []rune{'∘'}},
	{"complement", []rune{'∁'}},
	{"complexes", []rune{'ℂ'}},
	{"cong", []rune{'≅'}},
	{"congdot", []rune{'⩭'}},
	{"conint", []rune{'∮'}},
	{"copf", []rune{'\U0001d554'}},
	{"coprod", []rune{'∐'}},
	{"copysr", []rune{'℗'}},
	{"crarr", []rune{'↵'}},
	{"cross", []rune{'✗'}},
	{"cscr", []rune{'\U0001d4b8'}},
	{"csub", []rune{'⫏'}},
	{"csube", []rune{'⫑'}},
	{"csup", []rune{'⫐'}},
	{"csupe", []rune{'⫒'}},
	{"ctdot", []rune{'⋯'}},
	{"cudarrl", []rune{'⤸'}},
	{"cudarrr", []rune{'⤵'}},
	{"cuepr", []rune{'⋞'}},
	{"cuesc", []rune{'⋟'}},
	{"cularr", []rune{'↶'}},
	{"cularrp", []rune{'⤽'}},
	{"cup", []rune{'∪'}},
	{"cupbrcap", []rune{'⩈'}},
	{"cupcap", []rune{'⩆'}},
	{"cupcup", []rune{'⩊'}},
	{"cupdot", []rune{'⊍'}},
	{"cupor", []rune{'⩅'}},
	{"cups", []rune{'∪', '︀'}},
	{"curarr", []rune{'↷'}},
	{"curarrm", []rune{'⤼'}},
	{"curlyeqprec", []rune{'⋞'}},
	{"curlyeqsucc", []rune{'⋟'}},
	{"curlyvee", []rune{'⋎'}},
	{"curlywedge", []rune{'⋏'}},
	{"curvearrowleft", []rune{'↶'}},
	{"curvearrowright", []rune{'↷'}},
	{"cuvee", []rune{'⋎'}},
	{"cuwed", []rune{'⋏'}},
	{"cwconint", []rune{'∲'}},
	{"cwint", []rune{'∱'}},
	{"cylcty", []rune{'⌭'}},
	{"dArr", []rune{'⇓'}},
	{"dHar", []rune{'⥥'}},
	{"dagger", []rune{'†'}},
	{"daleth", []rune{'ℸ'}},
	{"darr", []rune{'↓'}},
	{"dash", []rune{'‐'}},
	{"dashv", []rune{'⊣'}},
	{"dbkarow", []rune{'⤏'}},
	{"dblac", []rune{'˝'}},
	{"dcaron", []rune{'ď'}},
	{"dcy", []rune{'д'}},
	{"dd", []rune{'ⅆ'}},
	{"ddagger", []rune{'‡'}},
	{"ddarr", []rune{'⇊'}},
	{"ddotseq", []rune{'⩷'}},
	{"delta", []rune{'δ'}},
	{"demptyv", []rune{'⦱'}},
	{"dfisht", []rune{'⥿'}},
	{"dfr", []rune{'\U0001d521'}},
	{"dharl", []rune{'⇃'}},
	{"dharr", []rune{'⇂'}},
	{"diam", []rune{'⋄'}},
	{"diamond", []rune{'⋄'}},
	{"diamondsuit", []rune{'♦'}},
	{"diams", []rune{'♦'}},
	{"die", []rune{'¨'}},
	{"digamma", []rune{'ϝ'}},
	{"disin", []rune{'⋲'}},
	{"div", []rune{'÷'}},
	{"divideontimes", []rune{'⋇'}},
	{"divonx", []rune{'⋇'}},
	{"djcy", []rune{'ђ'}},
	{"dlcorn", []rune{'⌞'}},
	{"dlcrop", []rune{'⌍'}},
	{"dollar", []rune{'$'}},
	{"dopf", []rune{'\U0001d555'}},
	{"dot", []rune{'˙'}},
	{"doteq", []rune{'≐'}},
	{"doteqdot", []rune{'≑'}},
	{"dotminus", []rune{'∸'}},
	{"dotplus", []rune{'∔'}},
	{"dotsquare", []rune{'⊡'}},
	{"doublebarwedge", []rune{'⌆'}},
	{"downarrow", []rune{'↓'}},
	{"downdownarrows", []rune{'⇊'}},
	{"downharpoonleft", []rune{'⇃'}},
	{"downharpoonright", []rune{'⇂'}},
	{"drbkarow", []rune{'⤐'}},
	{"drcorn", []rune{'⌟'}},
	{"drcrop", []rune{'⌌'}},
	{"dscr", []rune{'\U0001d4b9'}},
	{"dscy", []rune{'ѕ'}},
	{"dsol", []rune{'⧶'}},
	{"dstrok", []rune{'đ'}},
	{"dtdot", []rune{'⋱'}},
	{"dtri", []rune{'▿'}},
	{"dtrif", []rune{'▾'}},
	{"duarr", []rune{'⇵'}},
	{"duhar", []rune{'⥯'}},
	{"dwangle", []rune{'⦦'}},
	{"dzcy", []rune{'џ'}},
	{"dzigrarr", []rune{'⟿'}},
	{"eDDot", []rune{'⩷'}},
	{"eDot", []rune{'≑'}},
	{"easter", []rune{'⩮'}},
	{"ecaron", []rune{'ě'}},
	{"ecir", []rune{'≖'}},
	{"ecolon", []rune{'≕'}},
	{"ecy", []rune{'э'}},
	{"edot", []rune{'ė'}},
	{"ee", []rune{'ⅇ'}},
	{"efDot", []rune{'≒'}},
	{"efr", []rune{'\U0001d522'}},
	{"eg", []rune{'⪚'}},
	{"egs", []rune{'⪖'}},
	{"egsdot", []rune{'⪘'}},
	{"el", []rune{'⪙'}},
	{"elinters", []rune{'⏧'}},
	{"ell", []rune{'ℓ'}},
	{"els", []rune{'⪕'}},
	{"elsdot", []rune{'⪗'}},
	{"emacr", []rune{'ē'}},
	{"empty", []rune{'∅'}},
	{"emptyset", []rune{'∅'}},
	{"emptyv", []rune{'∅'}},
	{"emsp13", []rune{' '}},
	{"emsp14", []rune{' '}},
	{"emsp", []rune{' '}},
	{"eng", []rune{'ŋ'}},
	{"ensp", []rune{' '}},
	{"eogon", []rune{'ę'}},
	{"eopf", []rune{'\U0001d556'}},
	{"epar", []rune{'⋕'}},
	{"eparsl", []rune{'⧣'}},
	{"eplus", []rune{'⩱'}},
	{"epsi", []rune{'ε'}},
	{"epsilon", []rune{'ε'}},
	{"epsiv", []rune{'ϵ'}},
	{"eqcirc", []rune{'≖'}},
	{"eqcolon", []rune{'≕'}},
	{"eqsim", []rune{'≂'}},
	{"eqslantgtr", []rune{'⪖'}},
	{"eqslantless", []rune{'⪕'}},
	{"equals", []rune{'='}},
	{"equest", []rune{'≟'}},
	{"equiv", []rune{'≡'}},
	{"equivDD", []rune{'⩸'}},
	{"eqvparsl", []rune{'⧥'}},
	{"erDot", []rune{'≓'}},
	{"erarr", []rune{'⥱'}},
	{"escr", []rune{'ℯ'}},
	{"esdot", []rune{'≐'}},
	{"esim", []rune{'≂'}},
	{"eta", []rune{'η'}},
	{"euro", []rune{'€'}},
	{"excl", []rune{'!'}},
	{"exist", []rune{'∃'}},
	{"expectation", []rune{'ℰ'}},
	{"exponentiale", []rune{'ⅇ'}},
	{"fallingdotseq", []rune{'≒'}},
	{"fcy", []rune{'ф'}},
	{"female", []rune{'♀'}},
	{"ffilig", []rune{'ﬃ'}},
	{"fflig", []rune{'ﬀ'}},
	{"ffllig", []rune{'ﬄ'}},
	{"ffr", []rune{'\U0001d523'}},
	{"filig", []rune{'ﬁ'}},
	{"fjlig", []rune{'f', 'j'}},
	{"flat", []rune{'♭'}},
	{"fllig", []rune{'ﬂ'}},
	{"fltns", []rune{'▱'}},
	{"fnof", []rune{'ƒ'}},
	{"fopf", []rune{'\U0001d557'}},
	{"forall", []rune{'∀'}},
	{"fork", []rune{'⋔'}},
	{"forkv", []rune{'⫙'}},
	{"fpartint", []rune{'⨍'}},
	{"frac13", []rune{'⅓'}},
	{"frac15", []rune{'⅕'}},
	{"frac16", []rune{'⅙'}},
	{"frac18", []rune{'⅛'}},
	{"frac23", []rune{'⅔'}},
	{"frac25", []rune{'⅖'}},
	{"frac35", []rune{'⅗'}},
	{"frac38", []rune{'⅜'}},
	{"frac45", []rune{'⅘'}},
	{"frac56", []rune{'⅚'}},
	{"frac58", []rune{'⅝'}},
	{"frac78", []rune{'⅞'}},
	{"frasl", []rune{'⁄'}},
	{"frown", []rune{'⌢'}},
	{"fscr", []rune{'\U0001d4bb'}},
	{"gE", []rune{'≧'}},
	{"gEl", []rune{'⪌'}},
	{"gacute", []rune{'ǵ'}},
	{"gamma", []rune{'γ'}},
	{"gammad", []rune{'ϝ'}},
	{"gap", []rune{'⪆'}},
	{"gbreve", []rune{'ğ'}},
	{"gcirc", []rune{'ĝ'}},
	{"gcy", []rune{'г'}},
	{"gdot", []rune{'ġ'}},
	{"ge", []rune{'≥'}},
	{"gel", []rune{'⋛'}},
	{"geq", []rune{'≥'}},
	{"geqq", []rune{'≧'}},
	{"geqslant", []rune{'⩾'}},
	{"ges", []rune{'⩾'}},
	{"gescc", []rune{'⪩'}},
	{"gesdot", []rune{'⪀'}},
	{"gesdoto", []rune{'⪂'}},
	{"gesdotol", []rune{'⪄'}},
	{"gesl", []rune{'⋛', '︀'}},
	{"gesles", []rune{'⪔'}},
	{"gfr", []rune{'\U0001d524'}},
	{"gg", []rune{'≫'}},
	{"ggg", []rune{'⋙'}},
	{"gimel", []rune{'ℷ'}},
	{"gjcy", []rune{'ѓ'}},
	{"gl", []rune{'≷'}},
	{"glE", []rune{'⪒'}},
	{"gla", []rune{'⪥'}},
	{"glj", []rune{'⪤'}},
	{"gnE", []rune{'≩'}},
	{"gnap", []rune{'⪊'}},
	{"gnapprox", []rune{'⪊'}},
	{"gne", []rune{'⪈'}},
	{"gneq", []rune{'⪈'}},
	{"gneqq", []rune{'≩'}},
	{"gnsim", []rune{'⋧'}},
	{"gopf", []rune{'\U0001d558'}},
	{"grave", []rune{'`'}},
	{"gscr", []rune{'ℊ'}},
	{"gsim", []rune{'≳'}},
	{"gsime", []rune{'⪎'}},
	{"gsiml", []rune{'⪐'}},
	{"gtcc", []rune{'⪧'}},
	{"gtcir", []rune{'⩺'}},
	{"gtdot", []rune{'⋗'}},
	{"gtlPar", []rune{'⦕'}},
	{"gtquest", []rune{'⩼'}},
	{"gtrapprox", []rune{'⪆'}},
	{"gtrarr", []rune{'⥸'}},
	{"gtrdot", []rune{'⋗'}},
	{"gtreqless", []rune{'⋛'}},
	{"gtreqqless", []rune{'⪌'}},
	{"gtrless", []rune{'≷'}},
	{"gtrsim", []rune{'≳'}},
	{"gvertneqq", []rune{'≩', '︀'}},
	{"gvnE", []rune{'≩', '︀'}},
	{"hArr", []rune{'⇔'}},
	{"hairsp", []rune{' '}},
	{"half", []rune{'½'}},
	{"hamilt", []rune{'ℋ'}},
	{"hardcy", []rune{'ъ'}},
	{"harr", []rune{'↔'}},
	{"harrcir", []rune{'⥈'}},
	{"harrw", []rune{'↭'}},
	{"hbar", []rune{'ℏ'}},
	{"hcirc", []rune{'ĥ'}},
	{"hearts", []rune{'♥'}},
	{"heartsuit", []rune{'♥'}},
	{"hellip", []rune{'…'}},
	{"hercon", []rune{'⊹'}},
	{"hfr", []rune{'\U0001d525'}},
	{"hksearow", []rune{'⤥'}},
	{"hkswarow", []rune{'⤦'}},
	{"hoarr", []rune{'⇿'}},
	{"homtht", []rune{'∻'}},
	{"hookleftarrow", []rune{'↩'}},
	{"hookrightarrow", []rune{'↪'}},
	{"hopf", []rune{'\U0001d559'}},
	{"horbar", []rune{'―'}},
	{"hscr", []rune{'\U0001d4bd'}},
	{"hslash", []rune{'ℏ'}},
	{"hstrok", []rune{'ħ'}},
	{"hybull", []rune{'⁃'}},
	{"hyphen", []rune{'‐'}},
	{"ic", []rune{'⁣'}},
	{"icy", []rune{'и'}},
	{"iecy", []rune{'е'}},
	{"iff", []rune{'⇔'}},
	{"ifr", []rune{'\U0001d526'}},
	{"ii", []rune{'ⅈ'}},
	{"iiiint", []rune{'⨌'}},
	{"iiint", []rune{'∭'}},
	{"iinfin", []rune{'⧜'}},
	{"iiota", []rune{'℩'}},
	{"ijlig", []rune{'ĳ'}},
	{"imacr", []rune{'ī'}},
	{"image", []rune{'ℑ'}},
	{"imagline", []rune{'ℐ'}},
	{"imagpart", []rune{'ℑ'}},
	{"imath", []rune{'ı'}},
	{"imof", []rune{'⊷'}},
	{"imped", []rune{'Ƶ'}},
	{"in", []rune{'∈'}},
	{"incare", []rune{'℅'}},
	{"infin", []rune{'∞'}},
	{"infintie", []rune{'⧝'}},
	{"inodot", []rune{'ı'}},
	{"int", []rune{'∫'}},
	{"intcal", []rune{'⊺'}},
	{"integers", []rune{'ℤ'}},
	{"intercal", []rune{'⊺'}},
	{"intlarhk", []rune{'⨗'}},
	{"intprod", []rune{'⨼'}},
	{"iocy", []rune{'ё'}},
	{"iogon", []rune{'į'}},
	{"iopf", []rune{'\U0001d55a'}},
	{"iota", []rune{'ι'}},
	{"iprod", []rune{'⨼'}},
	{"iscr", []rune{'\U0001d4be'}},
	{"isin", []rune{'∈'}},
	{"isinE", []rune{'⋹'}},
	{"isindot", []rune{'⋵'}},
	{"isins", []rune{'⋴'}},
	{"isinsv", []rune{'⋳'}},
	{"isinv", []rune{'∈'}},
	{"it", []rune{'⁢'}},
	{"itilde", []rune{'ĩ'}},
	{"iukcy", []rune{'і'}},
	{"jcirc", []rune{'ĵ'}},
	{"jcy", []rune{'й'}},
	{"jfr", []rune{'\U0001d527'}},
	{"jmath", []rune{'ȷ'}},
	{"jopf", []rune{'\U0001d55b'}},
	{"jscr", []rune{'\U0001d4bf'}},
	{"jsercy", []rune{'ј'}},
	{"jukcy", []rune{'є'}},
	{"kappa", []rune{'κ'}},
	{"kappav", []rune{'ϰ'}},
	{"kcedil", []rune{'ķ'}},
	{"kcy", []rune{'к'}},
	{"kfr", []rune{'\U0001d528'}},
	{"kgreen", []rune{'ĸ'}},
	{"khcy", []rune{'х'}},
	{"kjcy", []rune{'ќ'}},
	{"kopf", []rune{'\U0001d55c'}},
	{"kscr", []rune{'\U0001d4c0'}},
	{"lAarr", []rune{'⇚'}},
	{"lArr", []rune{'⇐'}},
	{"lAtail", []rune{'⤛'}},
	{"lBarr", []rune{'⤎'}},
	{"lE", []rune{'≦'}},
	{"lEg", []rune{'⪋'}},
	{"lHar", []rune{'⥢'}},
	{"lacute", []rune{'ĺ'}},
	{"laemptyv", []rune{'⦴'}},
	{"lagran", []rune{'ℒ'}},
	{"lambda", []rune{'λ'}},
	{"lang", []rune{'⟨'}},
	{"langd", []rune{'⦑'}},
	{"langle", []rune{'⟨'}},
	{"lap", []rune{'⪅'}},
	{"larr", []rune{'←'}},
	{"larrb", []rune{'⇤'}},
	{"larrbfs", []rune{'⤟'}},
	{"larrfs", []rune{'⤝'}},
	{"larrhk", []rune{'↩'}},
	{"larrlp", []rune{'↫'}},
	{"larrpl", []rune{'⤹'}},
	{"larrsim", []rune{'⥳'}},
	{"larrtl", []rune{'↢'}},
	{"lat", []rune{'⪫'}},
	{"latail", []rune{'⤙'}},
	{"late", []rune{'⪭'}},
	{"lates", []rune{'⪭', '︀'}},
	{"lbarr", []rune{'⤌'}},
	{"lbbrk", []rune{'❲'}},
	{"lbrace", []rune{'{'}},
	{"lbrack", []rune{'['}},
	{"lbrke", []rune{'⦋'}},
	{"lbrksld", []rune{'⦏'}},
	{"lbrkslu", []rune{'⦍'}},
	{"lcaron", []rune{'ľ'}},
	{"lcedil", []rune{'ļ'}},
	{"lceil", []rune{'⌈'}},
	{"lcub", []rune{'{'}},
	{"lcy", []rune{'л'}},
	{"ldca", []rune{'⤶'}},
	{"ldquo", []rune{'“'}},
	{"ldquor", []rune{'„'}},
	{"ldrdhar", []rune{'⥧'}},
	{"ldrushar", []rune{'⥋'}},
	{"ldsh", []rune{'↲'}},
	{"le", []rune{'≤'}},
	{"leftarrow", []rune{'←'}},
	{"leftarrowtail", []rune{'↢'}},
	{"leftharpoondown", []rune{'↽'}},
	{"leftharpoonup", []rune{'↼'}},
	{"leftleftarrows", []rune{'⇇'}},
	{"leftrightarrow", []rune{'↔'}},
	{"leftrightarrows", []rune{'⇆'}},
	{"leftrightharpoons", []rune{'⇋'}},
	{"leftrightsquigarrow", []rune{'↭'}},
	{"leftthreetimes", []rune{'⋋'}},
	{"leg", []rune{'⋚'}},
	{"leq", []rune{'≤'}},
	{"leqq", []rune{'≦'}},
	{"leqslant", []rune{'⩽'}},
	{"les", []rune{'⩽'}},
	{"lescc", []rune{'⪨'}},
	{"lesdot", []rune{'⩿'}},
	{"lesdoto", []rune{'⪁'}},
	{"lesdotor", []rune{'⪃'}},
	{"lesg", []rune{'⋚', '︀'}},
	{"lesges", []rune{'⪓'}},
	{"lessapprox", []rune{'⪅'}},
	{"lessdot", []rune{'⋖'}},
	{"lesseqgtr", []rune{'⋚'}},
	{"lesseqqgtr", []rune{'⪋'}},
	{"lessgtr", []rune{'≶'}},
	{"lesssim", []rune{'≲'}},
	{"lfisht", []rune{'⥼'}},
	{"lfloor", []rune{'⌊'}},
	{"lfr", []rune{'\U0001d529'}},
	{"lg", []rune{'≶'}},
	{"lgE", []rune{'⪑'}},
	{"lhard", []rune{'↽'}},
	{"lharu", []rune{'↼'}},
	{"lharul", []rune{'⥪'}},
	{"lhblk", []rune{'▄'}},
	{"ljcy", []rune{'љ'}},
	{"ll", []rune{'≪'}},
	{"llarr", []rune{'⇇'}},
	{"llcorner", []rune{'⌞'}},
	{"llhard", []rune{'⥫'}},
	{"lltri", []rune{'◺'}},
	{"lmidot", []rune{'ŀ'}},
	{"lmoust", []rune{'⎰'}},
	{"lmoustache", []rune{'⎰'}},
	{"lnE", []rune{'≨'}},
	{"lnap", []rune{'⪉'}},
	{"lnapprox", []rune{'⪉'}},
	{"lne", []rune{'⪇'}},
	{"lneq", []rune{'⪇'}},
	{"lneqq", []rune{'≨'}},
	{"lnsim", []rune{'⋦'}},
	{"loang", []rune{'⟬'}},
	{"loarr", []rune{'⇽'}},
	{"lobrk", []rune{'⟦'}},
	{"longleftarrow", []rune{'⟵'}},
	{"longleftrightarrow", []rune{'⟷'}},
	{"longmapsto", []rune{'⟼'}},
	{"longrightarrow", []rune{'⟶'}},
	{"looparrowleft", []rune{'↫'}},
	{"looparrowright", []rune{'↬'}},
	{"lopar", []rune{'⦅'}},
	{"lopf", []rune{'\U0001d55d'}},
	{"loplus", []rune{'⨭'}},
	{"lotimes", []rune{'⨴'}},
	{"lowast", []rune{'∗'}},
	{"lowbar", []rune{'_'}},
	{"loz", []rune{'◊'}},
	{"lozenge", []rune{'◊'}},
	{"lozf", []rune{'⧫'}},
	{"lpar", []rune{'('}},
	{"lparlt", []rune{'⦓'}},
	{"lrarr", []rune{'⇆'}},
	{"lrcorner", []rune{'⌟'}},
	{"lrhar", []rune{'⇋'}},
	{"lrhard", []rune{'⥭'}},
	{"lrm", []rune{'‎'}},
	{"lrtri", []rune{'⊿'}},
	{"lsaquo", []rune{'‹'}},
	{"lscr", []rune{'\U0001d4c1'}},
	{"lsh", []rune{'↰'}},
	{"lsim", []rune{'≲'}},
	{"lsime", []rune{'⪍'}},
	{"lsimg", []rune{'⪏'}},
	{"lsqb", []rune{'['}},
	{"lsquo", []rune{'‘'}},
	{"lsquor", []rune{'‚'}},
	{"lstrok", []rune{'ł'}},
	{"ltcc", []rune{'⪦'}},
	{"ltcir", []rune{'⩹'}},
	{"ltdot", []rune{'⋖'}},
	{"lthree", []rune{'⋋'}},
	{"ltimes", []rune{'⋉'}},
	{"ltlarr", []rune{'⥶'}},
	{"ltquest", []rune{'⩻'}},
	{"ltrPar", []rune{'⦖'}},
	{"ltri", []rune{'◃'}},
	{"ltrie", []rune{'⊴'}},
	{"ltrif", []rune{'◂'}},
	{"lurdshar", []rune{'⥊'}},
	{"luruhar", []rune{'⥦'}},
	{"lvertneqq", []rune{'≨', '︀'}},
	{"lvnE", []rune{'≨', '︀'}},
	{"mDDot", []rune{'∺'}},
	{"male", []rune{'♂'}},
	{"malt", []rune{'✠'}},
	{"maltese", []rune{'✠'}},
	{"map", []rune{'↦'}},
	{"mapsto", []rune{'↦'}},
	{"mapstodown", []rune{'↧'}},
	{"mapstoleft", []rune{'↤'}},
	{"mapstoup", []rune{'↥'}},
	{"marker", []rune{'▮'}},
	{"mcomma", []rune{'⨩'}},
	{"mcy", []rune{'м'}},
	{"mdash", []rune{'—'}},
	{"measuredangle", []rune{'∡'}},
	{"mfr", []rune{'\U0001d52a'}},
	{"mho", []rune{'℧'}},
	{"mid", []rune{'∣'}},
	{"midast", []rune{'*'}},
	{"midcir", []rune{'⫰'}},
	{"minus", []rune{'−'}},
	{"minusb", []rune{'⊟'}},
	{"minusd", []rune{'∸'}},
	{"minusdu", []rune{'⨪'}},
	{"mlcp", []rune{'⫛'}},
	{"mldr", []rune{'…'}},
	{"mnplus", []rune{'∓'}},
	{"models", []rune{'⊧'}},
	{"mopf", []rune{'\U0001d55e'}},
	{"mp", []rune{'∓'}},
	{"mscr", []rune{'\U0001d4c2'}},
	{"mstpos", []rune{'∾'}},
	{"mu", []rune{'μ'}},
	{"multimap", []rune{'⊸'}},
	{"mumap", []rune{'⊸'}},
	{"nGg", []rune{'⋙', '̸'}},
	{"nGt", []rune{'≫', '⃒'}},
	{"nGtv", []rune{'≫', '̸'}},
	{"nLeftarrow", []rune{'⇍'}},
	{"nLeftrightarrow", []rune{'⇎'}},
	{"nLl", []rune{'⋘', '̸'}},
	{"nLt", []rune{'≪', '⃒'}},
	{"nLtv", []rune{'≪', '̸'}},
	{"nRightarrow", []rune{'⇏'}},
	{"nVDash", []rune{'⊯'}},
	{"nVdash", []rune{'⊮'}},
	{"nabla", []rune{'∇'}},
	{"nacute", []rune{'ń'}},
	{"nang", []rune{'∠', '⃒'}},
	{"nap", []rune{'≉'}},
	{"napE", []rune{'⩰', '̸'}},
	{"napid", []rune{'≋', '̸'}},
	{"napos", []rune{'ŉ'}},
	{"napprox", []rune{'≉'}},
	{"natur", []rune{'♮'}},
	{"natural", []rune{'♮'}},
	{"naturals", []rune{'ℕ'}},
	{"nbump", []rune{'≎', '̸'}},
	{"nbumpe", []rune{'≏', '̸'}},
	{"ncap", []rune{'⩃'}},
	{"ncaron", []rune{'ň'}},
	{"ncedil", []rune{'ņ'}},
	{"ncong", []rune{'≇'}},
	{"ncongdot", []rune{'⩭', '̸'}},
	{"ncup", []rune{'⩂'}},
	{"ncy", []rune{'н'}},
	{"ndash", []rune{'–'}},
	{"ne", []rune{'≠'}},
	{"neArr", []rune{'⇗'}},
	{"nearhk", []rune{'⤤'}},
	{"nearr", []rune{'↗'}},
	{"nearrow", []rune{'↗'}},
	{"nedot", []rune{'≐', '̸'}},
	{"nequiv", []rune{'≢'}},
	{"nesear", []rune{'⤨'}},
	{"nesim", []rune{'≂', '̸'}},
	{"nexist", []rune{'∄'}},
	{"nexists", []rune{'∄'}},
	{"nfr", []rune{'\U0001d52b'}},
	{"ngE", []rune{'≧', '̸'}},
	{"nge", []rune{'≱'}},
	{"ngeq", []rune{'≱'}},
	{"ngeqq", []rune{'≧', '̸'}},
	{"ngeqslant", []rune{'⩾', '̸'}},
	{"nges", []rune{'⩾', '̸'}},
	{"ngsim", []rune{'≵'}},
	{"ngt", []rune{'≯'}},
	{"ngtr", []rune{'≯'}},
	{"nhArr", []rune{'⇎'}},
	{"nharr", []rune{'↮'}},
	{"nhpar", []rune{'⫲'}},
	{"ni", []rune{'∋'}},
	{"nis", []rune{'⋼'}},
	{"nisd", []rune{'⋺'}},
	{"niv", []rune{'∋'}},
	{"njcy", []rune{'њ'}},
	{"nlArr", []rune{'⇍'}},
	{"nlE", []rune{'≦', '̸'}},
	{"nlarr", []rune{'↚'}},
	{"nldr", []rune{'‥'}},
	{"nle", []rune{'≰'}},
	{"nleftarrow", []rune{'↚'}},
	{"nleftrightarrow", []rune{'↮'}},
	{"nleq", []rune{'≰'}},
	{"nleqq", []rune{'≦', '̸'}},
	{"nleqslant", []rune{'⩽', '̸'}},
	{"nles", []rune{'⩽', '̸'}},
	{"nless", []rune{'≮'}},
	{"nlsim", []rune{'≴'}},
	{"nlt", []rune{'≮'}},
	{"nltri", []rune{'⋪'}},
	{"nltrie", []rune{'⋬'}},
	{"nmid", []rune{'∤'}},
	{"nopf", []rune{'\U0001d55f'}},
	{"notin", []rune{'∉'}},
	{"notinE", []rune{'⋹', '̸'}},
	{"notindot", []rune{'⋵', '̸'}},
	{"notinva", []rune{'∉'}},
	{"notinvb", []rune{'⋷'}},
	{"notinvc", []rune{'⋶'}},
	{"notni", []rune{'∌'}},
	{"notniva", []rune{'∌'}},
	{"notnivb", []rune{'⋾'}},
	{"notnivc", []rune{'⋽'}},
	{"npar", []rune{'∦'}},
	{"nparallel", []rune{'∦'}},
	{"nparsl", []rune{'⫽', '⃥'}},
	{"npart", []rune{'∂', '̸'}},
	{"npolint", []rune{'⨔'}},
	{"npr", []rune{'⊀'}},
	{"nprcue", []rune{'⋠'}},
	{"npre", []rune{'⪯', '̸'}},
	{"nprec", []rune{'⊀'}},
	{"npreceq", []rune{'⪯', '̸'}},
	{"nrArr", []rune{'⇏'}},
	{"nrarr", []rune{'↛'}},
	{"nrarrc", []rune{'⤳', '̸'}},
	{"nrarrw", []rune{'↝', '̸'}},
	{"nrightarrow", []rune{'↛'}},
	{"nrtri", []rune{'⋫'}},
	{"nrtrie", []rune{'⋭'}},
	{"nsc", []rune{'⊁'}},
	{"nsccue", []rune{'⋡'}},
	{"nsce", []rune{'⪰', '̸'}},
	{"nscr", []rune{'\U0001d4c3'}},
	{"nshortmid", []rune{'∤'}},
	{"nshortparallel", []rune{'∦'}},
	{"nsim", []rune{'≁'}},
	{"nsime", []rune{'≄'}},
	{"nsimeq", []rune{'≄'}},
	{"nsmid", []rune{'∤'}},
	{"nspar", []rune{'∦'}},
	{"nsqsube", []rune{'⋢'}},
	{"nsqsupe", []rune{'⋣'}},
	{"nsub", []rune{'⊄'}},
	{"nsubE", []rune{'⫅', '̸'}},
	{"nsube", []rune{'⊈'}},
	{"nsubset", []rune{'⊂', '⃒'}},
	{"nsubseteq", []rune{'⊈'}},
	{"nsubseteqq", []rune{'⫅', '̸'}},
	{"nsucc", []rune{'⊁'}},
	{"nsucceq", []rune{'⪰', '̸'}},
	{"nsup", []rune{'⊅'}},
	{"nsupE", []rune{'⫆', '̸'}},
	{"nsupe", []rune{'⊉'}},
	{"nsupset", []rune{'⊃', '⃒'}},
	{"nsupseteq", []rune{'⊉'}},
	{"nsupseteqq", []rune{'⫆', '̸'}},
	{"ntgl", []rune{'≹'}},
	{"ntlg", []rune{'≸'}},
	{"ntriangleleft", []rune{'⋪'}},
	{"ntrianglelefteq", []rune{'⋬'}},
	{"ntriangleright", []rune{'⋫'}},
	{"ntrianglerighteq", []rune{'⋭'}},
	{"nu", []rune{'ν'}},
	{"num", []rune{'#'}},
	{"numero", []rune{'№'}},
	{"numsp", []rune{' '}},
	{"nvDash", []rune{'⊭'}},
	{"nvHarr", []rune{'⤄'}},
	{"nvap", []rune{'≍', '⃒'}},
	{"nvdash", []rune{'⊬'}},
	{"nvge", []rune{'≥', '⃒'}},
	{"nvgt", []rune{'>', '⃒'}},
	{"nvinfin", []rune{'⧞'}},
	{"nvlArr", []rune{'⤂'}},
	{"nvle", []rune{'≤', '⃒'}},
	{"nvlt", []rune{'<', '⃒'}},
	{"nvltrie", []rune{'⊴', '⃒'}},
	{"nvrArr", []rune{'⤃'}},
	{"nvrtrie", []rune{'⊵', '⃒'}},
	{"nvsim", []rune{'∼', '⃒'}},
	{"nwArr", []rune{'⇖'}},
	{"nwarhk", []rune{'⤣'}},
	{"nwarr", []rune{'↖'}},
	{"nwarrow", []rune{'↖'}},
	{"nwnear", []rune{'⤧'}},
	{"oS", []rune{'Ⓢ'}},
	{"oast", []rune{'⊛'}},
	{"ocir", []rune{'⊚'}},
	{"ocy", []rune{'о'}},
	{"odash", []rune{'⊝'}},
	{"odblac", []rune{'ő'}},
	{"odiv", []rune{'⨸'}},
	{"odot", []rune{'⊙'}},
	{"odsold", []rune{'⦼'}},
	{"oelig", []rune{'œ'}},
	{"ofcir", []rune{'⦿'}},
	{"ofr", []rune{'\U0001d52c'}},
	{"ogon", []rune{'˛'}},
	{"ogt", []rune{'⧁'}},
	{"ohbar", []rune{'⦵'}},
	{"ohm", []rune{'Ω'}},
	{"oint", []rune{'∮'}},
	{"olarr", []rune{'↺'}},
	{"olcir", []rune{'⦾'}},
	{"olcross", []rune{'⦻'}},
	{"oline", []rune{'‾'}},
	{"olt", []rune{'⧀'}},
	{"omacr", []rune{'ō'}},
	{"omega", []rune{'ω'}},
	{"omicron", []rune{'ο'}},
	{"omid", []rune{'⦶'}},
	{"ominus", []rune{'⊖'}},
	{"oopf", []rune{'\U0001d560'}},
	{"opar", []rune{'⦷'}},
	{"operp", []rune{'⦹'}},
	{"oplus", []rune{'⊕'}},
	{"or", []rune{'∨'}},
	{"orarr", []rune{'↻'}},
	{"ord", []rune{'⩝'}},
	{"order", []rune{'ℴ'}},
	{"orderof", []rune{'ℴ'}},
	{"origof", []rune{'⊶'}},
	{"oror", []rune{'⩖'}},
	{"orslope", []rune{'⩗'}},
	{"orv", []rune{'⩛'}},
	{"oscr", []rune{'ℴ'}},
	{"osol", []rune{'⊘'}},
	{"otimes", []rune{'⊗'}},
	{"otimesas", []rune{'⨶'}},
	{"ovbar", []rune{'⌽'}},
	{"par", []rune{'∥'}},
	{"parallel", []rune{'∥'}},
	{"parsim", []rune{'⫳'}},
	{"parsl", []rune{'⫽'}},
	{"part", []rune{'∂'}},
	{"pcy", []rune{'п'}},
	{"percnt", []rune{'%'}},
	{"period", []rune{'.'}},
	{"permil", []rune{'‰'}},
	{"perp", []rune{'⊥'}},
	{"pertenk", []rune{'‱'}},
	{"pfr", []rune{'\U0001d52d'}},
	{"phi", []rune{'φ'}},
	{"phiv", []rune{'ϕ'}},
	{"phmmat", []rune{'ℳ'}},
	{"phone", []rune{'☎'}},
	{"pi", []rune{'π'}},
	{"pitchfork", []rune{'⋔'}},
	{"piv", []rune{'ϖ'}},
	{"planck", []rune{'ℏ'}},
	{"planckh", []rune{'ℎ'}},
	{"plankv", []rune{'ℏ'}},
	{"plus", []rune{'+'}},
	{"plusacir", []rune{'⨣'}},
	{"plusb", []rune{'⊞'}},
	{"pluscir", []rune{'⨢'}},
	{"plusdo", []rune{'∔'}},
	{"plusdu", []rune{'⨥'}},
	{"pluse", []rune{'⩲'}},
	{"plussim", []rune{'⨦'}},
	{"plustwo", []rune{'⨧'}},
	{"pm", []rune{'±'}},
	{"pointint", []rune{'⨕'}},
	{"popf", []rune{'\U0001d561'}},
	{"pr", []rune{'≺'}},
	{"prE", []rune{'⪳'}},
	{"prap", []rune{'⪷'}},
	{"prcue", []rune{'≼'}},
	{"pre", []rune{'⪯'}},
	{"prec", []rune{'≺'}},
	{"precapprox", []rune{'⪷'}},
	{"preccurlyeq", []rune{'≼'}},
	{"preceq", []rune{'⪯'}},
	{"precnapprox", []rune{'⪹'}},
	{"precneqq", []rune{'⪵'}},
	{"precnsim", []rune{'⋨'}},
	{"precsim", []rune{'≾'}},
	{"prime", []rune{'′'}},
	{"primes", []rune{'ℙ'}},
	{"prnE", []rune{'⪵'}},
	{"prnap", []rune{'⪹'}},
	{"prnsim", []rune{'⋨'}},
	{"prod", []rune{'∏'}},
	{"profalar", []rune{'⌮'}},
	{"profline", []rune{'⌒'}},
	{"profsurf", []rune{'⌓'}},
	{"prop", []rune{'∝'}},
	{"propto", []rune{'∝'}},
	{"prsim", []rune{'≾'}},
	{"prurel", []rune{'⊰'}},
	{"pscr", []rune{'\U0001d4c5'}},
	{"psi", []rune{'ψ'}},
	{"puncsp", []rune{' '}},
	{"qfr", []rune{'\U0001d52e'}},
	{"qint", []rune{'⨌'}},
	{"qopf", []rune{'\U0001d562'}},
	{"qprime", []rune{'⁗'}},
	{"qscr", []rune{'\U0001d4c6'}},
	{"quaternions", []rune{'ℍ'}},
	{"quatint", []rune{'⨖'}},
	{"quest", []rune{'?'}},
	{"questeq", []rune{'≟'}},
	{"rAarr", []rune{'⇛'}},
	{"rArr", []rune{'⇒'}},
	{"rAtail", []rune{'⤜'}},
	{"rBarr", []rune{'⤏'}},
	{"rHar", []rune{'⥤'}},
	{"race", []rune{'∽', '̱'}},
	{"racute", []rune{'ŕ'}},
	{"radic", []rune{'√'}},
	{"raemptyv", []rune{'⦳'}},
	{"rang", []rune{'⟩'}},
	{"rangd", []rune{'⦒'}},
	{"range", []rune{'⦥'}},
	{"rangle", []rune{'⟩'}},
	{"rarr", []rune{'→'}},
	{"rarrap", []rune{'⥵'}},
	{"rarrb", []rune{'⇥'}},
	{"rarrbfs", []rune{'⤠'}},
	{"rarrc", []rune{'⤳'}},
	{"rarrfs", []rune{'⤞'}},
	{"rarrhk", []rune{'↪'}},
	{"rarrlp", []rune{'↬'}},
	{"rarrpl", []rune{'⥅'}},
	{"rarrsim", []rune{'⥴'}},
	{"rarrtl", []rune{'↣'}},
	{"rarrw", []rune{'↝'}},
	{"ratail", []rune{'⤚'}},
	{"ratio", []rune{'∶'}},
	{"rationals", []rune{'ℚ'}},
	{"rbarr", []rune{'⤍'}},
	{"rbbrk", []rune{'❳'}},
	{"rbrace", []rune{'}'}},
	{"rbrack", []rune{']'}},
	{"rbrke", []rune{'⦌'}},
	{"rbrksld", []rune{'⦎'}},
	{"rbrkslu", []rune{'⦐'}},
	{"rcaron", []rune{'ř'}},
	{"rcedil", []rune{'ŗ'}},
	{"rceil", []rune{'⌉'}},
	{"rcub", []rune{'}'}},
	{"rcy", []rune{'р'}},
	{"rdca", []rune{'⤷'}},
	{"rdldhar", []rune{'⥩'}},
	{"rdquo", []rune{'”'}},
	{"rdquor", []rune{'”'}},
	{"rdsh", []rune{'↳'}},
	{"real", []rune{'ℜ'}},
	{"realine", []rune{'ℛ'}},
	{"realpart", []rune{'ℜ'}},
	{"reals", []rune{'ℝ'}},
	{"rect", []rune{'▭'}},
	{"rfisht", []rune{'⥽'}},
	{"rfloor", []rune{'⌋'}},
	{"rfr", []rune{'\U0001d52f'}},
	{"rhard", []rune{'⇁'}},
	{"rharu", []rune{'⇀'}},
	{"rharul", []rune{'⥬'}},
	{"rho", []rune{'ρ'}},
	{"rhov", []rune{'ϱ'}},
	{"rightarrow", []rune{'→'}},
	{"rightarrowtail", []rune{'↣'}},
	{"rightharpoondown", []rune{'⇁'}},
	{"rightharpoonup", []rune{'⇀'}},
	{"rightleftarrows", []rune{'⇄'}},
	{"rightleftharpoons", []rune{'⇌'}},
	{"rightrightarrows", []rune{'⇉'}},
	{"rightsquigarrow", []rune{'↝'}},
	{"rightthreetimes", []rune{'⋌'}},
	{"ring", []rune{'˚'}},
	{"risingdotseq", []rune{'≓'}},
	{"rlarr", []rune{'⇄'}},
	{"rlhar", []rune{'⇌'}},
	{"rlm", []rune{'‏'}},
	{"rmoust", []rune{'⎱'}},
	{"rmoustache", []rune{'⎱'}},
	{"rnmid", []rune{'⫮'}},
	{"roang", []rune{'⟭'}},
	{"roarr", []rune{'⇾'}},
	{"robrk", []rune{'⟧'}},
	{"ropar", []rune{'⦆'}},
	{"ropf", []rune{'\U0001d563'}},
	{"roplus", []rune{'⨮'}},
	{"rotimes", []rune{'⨵'}},
	{"rpar", []rune{')'}},
	{"rpargt", []rune{'⦔'}},
	{"rppolint", []rune{'⨒'}},
	{"rrarr", []rune{'⇉'}},
	{"rsaquo", []rune{'›'}},
	{"rscr", []rune{'\U0001d4c7'}},
	{"rsh", []rune{'↱'}},
	{"rsqb", []rune{']'}},
	{"rsquo", []rune{'’'}},
	{"rsquor", []rune{'’'}},
	{"rthree", []rune{'⋌'}},
	{"rtimes", []rune{'⋊'}},
	{"rtri", []rune{'▹'}},
	{"rtrie", []rune{'⊵'}},
	{"rtrif", []rune{'▸'}},
	{"rtriltri", []rune{'⧎'}},
	{"ruluhar", []rune{'⥨'}},
	{"rx", []rune{'℞'}},
	{"sacute", []rune{'ś'}},
	{"sbquo", []rune{'‚'}},
	{"sc", []rune{'≻'}},
	{"scE", []rune{'⪴'}},
	{"scap", []rune{'⪸'}},
	{"scaron", []rune{'š'}},
	{"sccue", []rune{'≽'}},
	{"sce", []rune{'⪰'}},
	{"scedil", []rune{'ş'}},
	{"scirc", []rune{'ŝ'}},
	{"scnE", []rune{'⪶'}},
	{"scnap", []rune{'⪺'}},
	{"scnsim", []rune{'⋩'}},
	{"scpolint", []rune{'⨓'}},
	{"scsim", []rune{'≿'}},
	{"scy", []rune{'с'}},
	{"sdot", []rune{'⋅'}},
	{"sdotb", []rune{'⊡'}},
	{"sdote", []rune{'⩦'}},
	{"seArr", []rune{'⇘'}},
	{"searhk", []rune{'⤥'}},
	{"searr", []rune{'↘'}},
	{"searrow", []rune{'↘'}},
	{"semi", []rune{';'}},
	{"seswar", []rune{'⤩'}},
	{"setminus", []rune{'∖'}},
	{"setmn", []rune{'∖'}},
	{"sext", []rune{'✶'}},
	{"sfr", []rune{'\U0001d530'}},
	{"sfrown", []rune{'⌢'}},
	{"sharp", []rune{'♯'}},
	{"shchcy", []rune{'щ'}},
	{"shcy", []rune{'ш'}},
	{"shortmid", []rune{'∣'}},
	{"shortparallel", []rune{'∥'}},
	{"sigma", []rune{'σ'}},
	{"sigmaf", []rune{'ς'}},
	{"sigmav", []rune{'ς'}},
	{"sim", []rune{'∼'}},
	{"simdot", []rune{'⩪'}},
	{"sime", []rune{'≃'}},
	{"simeq", []rune{'≃'}},
	{"simg", []rune{'⪞'}},
	{"simgE", []rune{'⪠'}},
	{"siml", []rune{'⪝'}},
	{"simlE", []rune{'⪟'}},
	{"simne", []rune{'≆'}},
	{"simplus", []rune{'⨤'}},
	{"simrarr", []rune{'⥲'}},
	{"slarr", []rune{'←'}},
	{"smallsetminus", []rune{'∖'}},
	{"smashp", []rune{'⨳'}},
	{"smeparsl", []rune{'⧤'}},
	{"smid", []rune{'∣'}},
	{"smile", []rune{'⌣'}},
	{"smt", []rune{'⪪'}},
	{"smte", []rune{'⪬'}},
	{"smtes", []rune{'⪬', '︀'}},
	{"softcy", []rune{'ь'}},
	{"sol", []rune{'/'}},
	{"solb", []rune{'⧄'}},
	{"solbar", []rune{'⌿'}},
	{"sopf", []rune{'\U0001d564'}},
	{"spades", []rune{'♠'}},
	{"spadesuit", []rune{'♠'}},
	{"spar", []rune{'∥'}},
	{"sqcap", []rune{'⊓'}},
	{"sqcaps", []rune{'⊓', '︀'}},
	{"sqcup", []rune{'⊔'}},
	{"sqcups", []rune{'⊔', '︀'}},
	{"sqsub", []rune{'⊏'}},
	{"sqsube", []rune{'⊑'}},
	{"sqsubset", []rune{'⊏'}},
	{"sqsubseteq", []rune{'⊑'}},
	{"sqsup", []rune{'⊐'}},
	{"sqsupe", []rune{'⊒'}},
	{"sqsupset", []rune{'⊐'}},
	{"sqsupseteq", []rune{'⊒'}},
	{"squ", []rune{'□'}},
	{"square", []rune{'□'}},
	{"squarf", []rune{'▪'}},
	{"squf", []rune{'▪'}},
	{"srarr", []rune{'→'}},
	{"sscr", []rune{'\U0001d4c8'}},
	{"ssetmn", []rune{'∖'}},
	{"ssmile", []rune{'⌣'}},
	{"sstarf", []rune{'⋆'}},
	{"star", []rune{'☆'}},
	{"starf", []rune{'★'}},
	{"straightepsilon", []rune{'ϵ'}},
	{"straightphi", []rune{'ϕ'}},
	{"strns", []rune{'¯'}},
	{"sub", []rune{'⊂'}},
	{"subE", []rune{'⫅'}},
	{"subdot", []rune{'⪽'}},
	{"sube", []rune{'⊆'}},
	{"subedot", []rune{'⫃'}},
	{"submult", []rune{'⫁'}},
	{"subnE", []rune{'⫋'}},
	{"subne", []rune{'⊊'}},
	{"subplus", []rune{'⪿'}},
	{"subrarr", []rune{'⥹'}},
	{"subset", []rune{'⊂'}},
	{"subseteq", []rune{'⊆'}},
	{"subseteqq", []rune{'⫅'}},
	{"subsetneq", []rune{'⊊'}},
	{"subsetneqq", []rune{'⫋'}},
	{"subsim", []rune{'⫇'}},
	{"subsub", []rune{'⫕'}},
	{"subsup", []rune{'⫓'}},
	{"succ", []rune{'≻'}},
	{"succapprox", []rune{'⪸'}},
	{"succcurlyeq", []rune{'≽'}},
	{"succeq", []rune{'⪰'}},
	{"succnapprox", []rune{'⪺'}},
	{"succneqq", []rune{'⪶'}},
	{"succnsim", []rune{'⋩'}},
	{"succsim", []rune{'≿'}},
	{"sum", []rune{'∑'}},
	{"sung", []rune{'♪'}},
	{"sup", []rune{'⊃'}},
	{"supE", []rune{'⫆'}},
	{"supdot", []rune{'⪾'}},
	{"supdsub", []rune{'⫘'}},
	{"supe", []rune{'⊇'}},
	{"supedot", []rune{'⫄'}},
	{"suphsol", []rune{'⟉'}},
	{"suphsub", []rune{'⫗'}},
	{"suplarr", []rune{'⥻'}},
	{"supmult", []rune{'⫂'}},
	{"supnE", []rune{'⫌'}},
	{"supne", []rune{'⊋'}},
	{"supplus", []rune{'⫀'}},
	{"supset", []rune{'⊃'}},
	{"supseteq", []rune{'⊇'}},
	{"supseteqq", []rune{'⫆'}},
	{"supsetneq", []rune{'⊋'}},
	{"supsetneqq", []rune{'⫌'}},
	{"supsim", []rune{'⫈'}},
	{"supsub", []rune{'⫔'}},
	{"supsup", []rune{'⫖'}},
	{"swArr", []rune{'⇙'}},
	{"swarhk", []rune{'⤦'}},
	{"swarr", []rune{'↙'}},
	{"swarrow", []rune{'↙'}},
	{"swnwar", []rune{'⤪'}},
	{"target", []rune{'⌖'}},
	{"tau", []rune{'τ'}},
	{"tbrk", []rune{'⎴'}},
	{"tcaron", []rune{'ť'}},
	{"tcedil", []rune{'ţ'}},
	{"tcy", []rune{'т'}},
	{"tdot", []rune{'⃛'}},
	{"telrec", []rune{'⌕'}},
	{"tfr", []rune{'\U0001d531'}},
	{"there4", []rune{'∴'}},
	{"therefore", []rune{'∴'}},
	{"theta", []rune{'θ'}},
	{"thetasym", []rune{'ϑ'}},
	{"thetav", []rune{'ϑ'}},
	{"thickapprox", []rune{'≈'}},
	{"thicksim", []rune{'∼'}},
	{"thinsp", []rune{' '}},
	{"thkap", []rune{'≈'}},
	{"thksim", []rune{'∼'}},
	{"tilde", []rune{'˜'}},
	{"timesb", []rune{'⊠'}},
	{"timesbar", []rune{'⨱'}},
	{"timesd", []rune{'⨰'}},
	{"tint", []rune{'∭'}},
	{"toea", []rune{'⤨'}},
	{"top", []rune{'⊤'}},
	{"topbot", []rune{'⌶'}},
	{"topcir", []rune{'⫱'}},
	{"topf", []rune{'\U0001d565'}},
	{"topfork", []rune{'⫚'}},
	{"tosa", []rune{'⤩'}},
	{"tprime", []rune{'‴'}},
	{"trade", []rune{'™'}},
	{"triangle", []rune{'▵'}},
	{"triangledown", []rune{'▿'}},
	{"triangleleft", []rune{'◃'}},
	{"trianglelefteq", []rune{'⊴'}},
	{"triangleq", []rune{'≜'}},
	{"triangleright", []rune{'▹'}},
	{"trianglerighteq", []rune{'⊵'}},
	{"tridot", []rune{'◬'}},
	{"trie", []rune{'≜'}},
	{"triminus", []rune{'⨺'}},
	{"triplus", []rune{'⨹'}},
	{"trisb", []rune{'⧍'}},
	{"tritime", []rune{'⨻'}},
	{"trpezium", []rune{'⏢'}},
	{"tscr", []rune{'\U0001d4c9'}},
	{"tscy", []rune{'ц'}},
	{"tshcy", []rune{'ћ'}},
	{"tstrok", []rune{'ŧ'}},
	{"twixt", []rune{'≬'}},
	{"twoheadleftarrow", []rune{'↞'}},
	{"twoheadrightarrow", []rune{'↠'}},
	{"uArr", []rune{'⇑'}},
	{"uHar", []rune{'⥣'}},
	{"uarr", []rune{'↑'}},
	{"ubrcy", []rune{'ў'}},
	{"ubreve", []rune{'ŭ'}},
	{"ucy", []rune{'у'}},
	{"udarr", []rune{'⇅'}},
	{"udblac", []rune{'ű'}},
	{"udhar", []rune{'⥮'}},
	{"ufisht", []rune{'⥾'}},
	{"ufr", []rune{'\U0001d532'}},
	{"uharl", []rune{'↿'}},
	{"uharr", []rune{'↾'}},
	{"uhblk", []rune{'▀'}},
	{"ulcorn", []rune{'⌜'}},
	{"ulcorner", []rune{'⌜'}},
	{"ulcrop", []rune{'⌏'}},
	{"ultri", []rune{'◸'}},
	{"umacr", []rune{'ū'}},
	{"uogon", []rune{'ų'}},
	{"uopf", []rune{'\U0001d566'}},
	{"uparrow", []rune{'↑'}},
	{"updownarrow", []rune{'↕'}},
	{"upharpoonleft", []rune{'↿'}},
	{"upharpoonright", []rune{'↾'}},
	{"uplus", []rune{'⊎'}},
	{"upsi", []rune{'υ'}},
	{"upsih", []rune{'ϒ'}},
	{"upsilon", []rune{'υ'}},
	{"upuparrows", []rune{'⇈'}},
	{"urcorn", []rune{'⌝'}},
	{"urcorner", []rune{'⌝'}},
	{"urcrop", []rune{'⌎'}},
	{"uring", []rune{'ů'}},
	{"urtri", []rune{'◹'}},
	{"uscr", []rune{'\U0001d4ca'}},
	{"utdot", []rune{'⋰'}},
	{"utilde", []rune{'ũ'}},
	{"utri", []rune{'▵'}},
	{"utrif", []rune{'▴'}},
	{"uuarr", []rune{'⇈'}},
	{"uwangle", []rune{'⦧'}},
	{"vArr", []rune{'⇕'}},
	{"vBar", []rune{'⫨'}},
	{"vBarv", []rune{'⫩'}},
	{"vDash", []rune{'⊨'}},
	{"vangrt", []rune{'⦜'}},
	{"varepsilon", []rune{'ϵ'}},
	{"varkappa", []rune{'ϰ'}},
	{"varnothing", []rune{'∅'}},
	{"varphi", []rune{'ϕ'}},
	{"varpi", []rune{'ϖ'}},
	{"varpropto", []rune{'∝'}},
	{"varr", []rune{'↕'}},
	{"varrho", []rune{'ϱ'}},
	{"varsigma", []rune{'ς'}},
	{"varsubsetneq", []rune{'⊊', '︀'}},
	{"varsubsetneqq", []rune{'⫋', '︀'}},
	{"varsupsetneq", []rune{'⊋', '︀'}},
	{"varsupsetneqq", []rune{'⫌', '︀'}},
	{"vartheta", []rune{'ϑ'}},
	{"vartriangleleft", []rune{'⊲'}},
	{"vartriangleright", []rune{'⊳'}},
	{"vcy", []rune{'в'}},
	{"vdash", []rune{'⊢'}},
	{"vee", []rune{'∨'}},
	{"veebar", []rune{'⊻'}},
	{"veeeq", []rune{'≚'}},
	{"vellip", []rune{'⋮'}},
	{"verbar", []rune{'|'}},
	{"vert", []rune{'|'}},
	{"vfr", []rune{'\U0001d533'}},
	{"vltri", []rune{'⊲'}},
	{"vnsub", []rune{'⊂', '⃒'}},
	{"vnsup", []rune{'⊃', '⃒'}},
	{"vopf", []rune{'\U0001d567'}},
	{"vprop", []rune{'∝'}},
	{"vrtri", []rune{'⊳'}},
	{"vscr", []rune{'\U0001d4cb'}},
	{"vsubnE", []rune{'⫋', '︀'}},
	{"vsubne", []rune{'⊊', '︀'}},
	{"vsupnE", []rune{'⫌', '︀'}},
	{"vsupne", []rune{'⊋', '︀'}},
	{"vzigzag", []rune{'⦚'}},
	{"wcirc", []rune{'ŵ'}},
	{"wedbar", []rune{'⩟'}},
	{"wedge", []rune{'∧'}},
	{"wedgeq", []rune{'≙'}},
	{"weierp", []rune{'℘'}},
	{"wfr", []rune{'\U0001d534'}},
	{"wopf", []rune{'\U0001d568'}},
	{"wp", []rune{'℘'}},
	{"wr", []rune{'≀'}},
	{"wreath", []rune{'≀'}},
	{"wscr", []rune{'\U0001d4cc'}},
	{"xcap", []rune{'⋂'}},
	{"xcirc", []rune{'◯'}},
	{"xcup", []rune{'⋃'}},
	{"xdtri", []rune{'▽'}},
	{"xfr", []rune{'\U0001d535'}},
	{"xhArr", []rune{'⟺'}},
	{"xharr", []rune{'⟷'}},
	{"xi", []rune{'ξ'}},
	{"xlArr", []rune{'⟸'}},
	{"xlarr", []rune{'⟵'}},
	{"xmap", []rune{'⟼'}},
	{"xnis", []rune{'⋻'}},
	{"xodot", []rune{'⨀'}},
	{"xopf", []rune{'\U0001d569'}},
	{"xoplus", []rune{'⨁'}},
	{"xotime", []rune{'⨂'}},
	{"xrArr", []rune{'⟹'}},
	{"xrarr", []rune{'⟶'}},
	{"xscr", []rune{'\U0001d4cd'}},
	{"xsqcup", []rune{'⨆'}},
	{"xuplus", []rune{'⨄'}},
	{"xutri", []rune{'△'}},
	{"xvee", []rune{'⋁'}},
	{"xwedge", []rune{'⋀'}},
	{"yacy", []rune{'я'}},
	{"ycirc", []rune{'ŷ'}},
	{"ycy", []rune{'ы'}},
	{"yfr", []rune{'\U0001d536'}},
	{"yicy", []rune{'ї'}},
	{"yopf", []rune{'\U0001d56a'}},
	{"yscr", []rune{'\U0001d4ce'}},
	{"yucy", []rune{'ю'}},
	{"zacute", []rune{'ź'}},
	{"zcaron", []rune{'ž'}},
	{"zcy", []rune{'з'}},
	{"zdot", []rune{'ż'}},
	{"zeetrf", []rune{'ℨ'}},
	{"zeta", []rune{'ζ'}},
	{"zfr", []rune{'\U0001d537'}},
	{"zhcy", []rune{'ж'}},
	{"zigrarr", []rune{'⇝'}},
	{"zopf", []rune{'\U0001d56b'}},
	{"zscr", []rune{'\U0001d4cf'}},
	{"zwj", []rune{'‍'}},
	{"zwnj", []rune{'‌'}},
}

func buildCharRefTable() map[string][]rune {
	t := make(map[string][]rune, len(legacyRefs)*2+len(modernRefs))
	for _, r := range legacyRefs {
		t[r.name] = []rune{r.cp}
		t[r.name+";"] = []rune{r.cp}
	}
	for _, r := range modernRefs {
		t[r.name+";"] = r.cps
	}
	return t
}
