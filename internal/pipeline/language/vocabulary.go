package language

import "regexp"

// Closed vocabulary sets and pattern lists used by the detector. These are
// immutable package-level tables; the detector never writes to them.

var kiswahiliVocabulary = map[string]bool{
	"habari": true, "asante": true, "karibu": true, "pole": true,
	"sawa": true, "ndiyo": true, "hapana": true, "tafadhali": true,
	"rafiki": true, "msaada": true, "tupo": true, "sana": true,
	"kwa": true, "na": true, "ni": true,
	"kupata": true, "kusaidia": true, "kufanya": true, "kufikia": true,
	"kuenda": true, "kujibu": true, "kufungua": true, "kuandika": true,
	"kuanguka": true, "kufa": true, "kutegemea": true,
	"mtu": true, "watu": true, "kitu": true, "vitu": true,
	"sehemu": true, "mahali": true,
	"asubuhi": true, "alasiri": true, "jioni": true, "usiku": true,
	"siku": true, "wiki": true, "mwezi": true, "mwaka": true,
	"muda": true, "wakati": true, "saa": true, "dakika": true,
	"sekunde": true,
	"namba": true, "idadi": true, "kila": true, "moja": true,
	"mbili": true, "tatu": true, "nne": true,
	"kra": true, "pin": true, "itax": true, "serikali": true,
	"huduma": true, "fomu": true, "karatasi": true,
	"hata": true, "kama": true, "lakini": true, "ingawa": true,
	"baada": true, "kabla": true, "kutoka": true, "kwenda": true,
	"huko": true, "hapa": true, "hapo": true, "sini": true,
	"juu": true, "chini": true, "mbali": true, "jibu": true,
	"swali": true, "ujumbe": true, "ujumuika": true,
}

var englishVocabulary = map[string]bool{
	"hello": true, "thank": true, "please": true, "help": true,
	"friend": true, "nil": true, "returns": true, "file": true,
	"password": true, "login": true, "submit": true, "form": true,
	"booking": true, "appointment": true, "service": true,
	"government": true, "portal": true, "access": true,
	"recovery": true, "registration": true, "confirmation": true,
	"sms": true,
}

// Morphological patterns common in Kiswahili: vowel clusters, verb and
// noun class prefixes, tense markers.
var kiswahiliPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[a-z]{2,}[iaeou][aeiou]+`),
	regexp.MustCompile(`\bk[ua]\w+`),
	regexp.MustCompile(`\bm[ao]\w+`),
	regexp.MustCompile(`\b(ni|na|ja|li|tu|wa)\w+`),
}

var kiswahiliPhrases = []string{
	"nataka", "karibu", "asante", "tafadhali", "je", "nini",
	"wakati gani", "siku gani", "wapi", "nani", "lini",
}

var englishContractionPattern = regexp.MustCompile(`[a-z]+'[a-z]+`)

var englishFunctionWordPattern = regexp.MustCompile(`\b(the|a|an|is|are|be|been|have|has|do|does|did)\b`)

var englishPhrases = []string{
	"file nil", "kra pin", "recover pin", "itax", "help me",
	"how to", "what is", "where is", "when can", "do i",
}

var nonWordPattern = regexp.MustCompile(`[^\w]`)
