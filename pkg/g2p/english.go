package g2p

import "sync"

// English returns the shared English rule table. It is built on first
// use and never modified afterwards.
var English = sync.OnceValue(func() *RuleTable {
	return MustRuleTable(EnglishRules)
})

// EnglishRules are the letter-to-sound rules of "Automatic translation
// of English text to phonetics by means of letter-to-sound rules",
// NRL Report 7948 (1976). Order matters: within the rules sharing a
// first letter, the first matching rule wins, so specific spellings
// come before general ones and the bare single letter comes last.
var EnglishRules = []RuleSpec{
	{" ", "", "", "/"},
	{"-", "", "", ""},
	{"'S", ".", "", "z"},
	{"'S", "#:.E", "", "z"},
	{"'S", "#", "", "z"},
	{"'", "", "", ""},
	{",", "", "", "/"},
	{".", "", "", "/"},
	{"?", "", "", "/"},
	{"!", "", "", "/"},

	{"A", "", " ", "AX"},
	{"ARE", " ", " ", "AA r"},
	{"AR", " ", "O", "AX r"},
	{"AR", "", "#", "EH r"},
	{"AS", "^", "#", "EY s"},
	{"A", "", "WA", "AX"},
	{"AW", "", "", "AO"},
	{"ANY", " :", "", "EH n IY"},
	{"A", "", "^+#", "EY"},
	{"ALLY", "#:", "", "AX l IY"},
	{"AL", " ", "#", "AX l"},
	{"AGAIN", "", "", "AX g EH n"},
	{"AG", "#:", "E", "IH j"},
	{"A", "", "^+:#", "AE"},
	{"A", " :", "^+ ", "EY"},
	{"A", "", "^%", "EY"},
	{"ARR", " ", "", "AX r"},
	{"ARR", "", "", "AE r"},
	{"AR", " :", " ", "AA r"},
	{"AR", "", " ", "ER"},
	{"AR", "", "", "AA r"},
	{"AIR", "", "", "EH r"},
	{"AI", "", "", "EY"},
	{"AY", "", "", "EY"},
	{"AU", "", "", "AO"},
	{"AL", "#:", " ", "AX l"},
	{"ALS", "#:", " ", "AX l z"},
	{"ALK", "", "", "AO k"},
	{"AL", "", "^", "AO l"},
	{"ABLE", " :", "", "EY b AX l"},
	{"ABLE", "", "", "AX b AX l"},
	{"ANG", "", "+", "EY n j"},
	{"A", "", "", "AE"},

	{"BE", " ", "^#", "b IH"},
	{"BEING", "", "", "b IY IH NG"},
	{"BOTH", " ", " ", "b OW TH"},
	{"BUS", " ", "#", "b IH z"},
	{"BUIL", "", "", "b IH l"},
	{"B", "", "", "b"},

	{"CH", " ", "^", "k"},
	{"CH", "^E", "", "k"},
	{"CH", "", "", "CH"},
	{"CI", " S", "#", "s AY"},
	{"CI", "", "A", "SH"},
	{"CI", "", "O", "SH"},
	{"CI", "", "EN", "SH"},
	{"C", "", "+", "s"},
	{"CK", "", "", "k"},
	{"COM", "", "%", "k AH m"},
	{"C", "", "", "k"},

	{"DED", "#:", " ", "d IH d"},
	{"D", ".E", " ", "d"},
	{"D", "#:^E", " ", "t"},
	{"DE", " ", "^#", "d IH"},
	{"DO", " ", " ", "d UW"},
	{"DOES", " ", "", "d AH z"},
	{"DOING", " ", "", "d UW IH NG"},
	{"DOW", " ", "", "d AW"},
	{"DU", "", "A", "j UW"},
	{"D", "", "", "d"},

	{"E", "#:", " ", ""},
	{"E", "':^", " ", ""},
	{"E", " :", " ", "IY"},
	{"ED", "#", " ", "d"},
	{"E", "#:", "D ", ""},
	{"EV", "", "ER", "EH v"},
	{"E", "", "^%", "IY"},
	{"ERI", "", "#", "IY r IY"},
	{"ERI", "", "", "EH r IH"},
	{"ER", "#:", "#", "ER"},
	{"ER", "", "#", "EH r"},
	{"ER", "", "", "ER"},
	{"EVEN", " ", "", "IY v EH n"},
	{"E", "#:", "W", ""},
	{"EW", "T", "", "UW"},
	{"EW", "S", "", "UW"},
	{"EW", "R", "", "UW"},
	{"EW", "D", "", "UW"},
	{"EW", "L", "", "UW"},
	{"EW", "Z", "", "UW"},
	{"EW", "N", "", "UW"},
	{"EW", "J", "", "UW"},
	{"EW", "TH", "", "UW"},
	{"EW", "CH", "", "UW"},
	{"EW", "SH", "", "UW"},
	{"EW", "", "", "y UW"},
	{"E", "", "O", "IY"},
	{"ES", "#:S", " ", "IH z"},
	{"ES", "#:C", " ", "IH z"},
	{"ES", "#:G", " ", "IH z"},
	{"ES", "#:Z", " ", "IH z"},
	{"ES", "#:X", " ", "IH z"},
	{"ES", "#:J", " ", "IH z"},
	{"ES", "#:CH", " ", "IH z"},
	{"ES", "#:SH", " ", "IH z"},
	{"E", "#:", "S ", ""},
	{"ELY", "#:", " ", "l IY"},
	{"EMENT", "#:", "", "m EH n t"},
	{"EFUL", "", "", "f UH l"},
	{"EE", "", "", "IY"},
	{"EARN", "", "", "ER n"},
	{"EAR", " ", "^", "ER"},
	{"EAD", "", "", "EH d"},
	{"EA", "#:", " ", "IY AX"},
	{"EA", "", "SU", "EH"},
	{"EA", "", "", "IY"},
	{"EIGH", "", "", "EY"},
	{"EI", "", "", "IY"},
	{"EYE", " ", "", "AY"},
	{"EY", "", "", "IY"},
	{"EU", "", "", "y UW"},
	{"E", "", "", "EH"},

	{"FUL", "", "", "f UH l"},
	{"F", "", "", "f"},

	{"GIV", "", "", "g IH v"},
	{"G", " ", "I^", "g"},
	{"GE", "", "T", "g EH"},
	{"GGES", "SU", "", "g j EH s"},
	{"GG", "", "", "g"},
	{"G", " B#", "", "g"},
	{"G", "", "+", "j"},
	{"GREAT", "", "", "g r EY t"},
	{"GH", "#", "", ""},
	{"G", "", "", "g"},

	{"HAV", " ", "", "HH AE v"},
	{"HERE", " ", "", "HH IY r"},
	{"HOUR", " ", "", "AW ER"},
	{"HOW", "", "", "HH AW"},
	{"H", "", "#", "HH"},
	{"H", "", "", ""},

	{"IN", " ", "", "IH n"},
	{"I", " ", " ", "AY"},
	{"IN", "", "D", "AY n"},
	{"IER", "", "", "IY ER"},
	{"IED", "#:R", "", "IY d"},
	{"IED", "", " ", "AY d"},
	{"IEN", "", "", "IY EH n"},
	{"IE", "", "T", "AY EH"},
	{"I", " :", "%", "AY"},
	{"I", "", "%", "IY"},
	{"IE", "", "", "IY"},
	{"I", "", "^+:#", "IH"},
	{"IR", "", "#", "AY r"},
	{"IZ", "", "%", "AY z"},
	{"IS", "", "%", "AY z"},
	{"I", "", "D%", "AY"},
	{"I", "+^", "^+", "IH"},
	{"I", "", "T%", "AY"},
	{"I", "#:^", "^+", "IH"},
	{"I", "", "^+", "AY"},
	{"IR", "", "", "ER"},
	{"IGH", "", "", "AY"},
	{"ILD", "", "", "AY l d"},
	{"IGN", "", " ", "AY n"},
	{"IGN", "", "^", "AY n"},
	{"IGN", "", "%", "AY n"},
	{"IQUE", "", "", "IY k"},
	{"I", "", "", "IH"},

	{"J", "", "", "j"},

	{"K", " ", "N", ""},
	{"K", "", "", "k"},

	{"LO", "", "C#", "l OW"},
	{"L", "L", "", ""},
	{"L", "#:^", "%", "AX l"},
	{"LEAD", "", "", "l IY d"},
	{"L", "", "", "l"},

	{"MOV", "", "", "m UW v"},
	{"M", "", "", "m"},

	{"NG", "E", "+", "n j"},
	{"NG", "", "R", "NG g"},
	{"NG", "", "#", "NG g"},
	{"NGL", "", "%", "NG g AX l"},
	{"NG", "", "", "NG"},
	{"NK", "", "", "NG k"},
	{"NOW", " ", " ", "n AW"},
	{"N", "", "", "n"},

	{"OF", "", " ", "AX v"},
	{"OROUGH", "", "", "ER OW"},
	{"OR", "#:", " ", "ER"},
	{"ORS", "#:", " ", "ER z"},
	{"OR", "", "", "AO r"},
	{"ONE", " ", "", "w AH n"},
	{"OW", "", "", "OW"},
	{"OVER", " ", "", "OW v ER"},
	{"OV", "", "", "AH v"},
	{"O", "", "^%", "OW"},
	{"O", "", "^EN", "OW"},
	{"O", "", "^I#", "OW"},
	{"OL", "", "D", "OW l"},
	{"OUGHT", "", "", "AO t"},
	{"OUGH", "", "", "AH f"},
	{"OU", " ", "", "AW"},
	{"OU", "H", "S#", "AW"},
	{"OUS", "", "", "AX s"},
	{"OUR", "", "", "AO r"},
	{"OULD", "", "", "UH d"},
	{"OU", "^", "^L", "AH"},
	{"OUP", "", "", "UW p"},
	{"OU", "", "", "AW"},
	{"OY", "", "", "OY"},
	{"OING", "", "", "OW IH NG"},
	{"OI", "", "", "OY"},
	{"OOR", "", "", "AO r"},
	{"OOK", "", "", "UH k"},
	{"OOD", "", "", "UH d"},
	{"OO", "", "", "UW"},
	{"O", "", "E", "OW"},
	{"O", "", " ", "OW"},
	{"OA", "", "", "OW"},
	{"ONLY", " ", "", "OW n l IY"},
	{"ONCE", " ", "", "w AH n s"},
	{"ON'T", "", "", "OW n t"},
	{"O", "C", "N", "AA"},
	{"O", "", "NG", "AO"},
	{"O", " :^", "N", "AH"},
	{"ON", "I", "", "AX n"},
	{"ON", "#:", " ", "AX n"},
	{"ON", "#^", "", "AX n"},
	{"O", "", "ST ", "OW"},
	{"OF", "", "^", "AO f"},
	{"OTHER", "", "", "AH DH ER"},
	{"OSS", "", " ", "AO s"},
	{"OM", "#:^", "", "AH m"},
	{"O", "", "", "AA"},

	{"PH", "", "", "f"},
	{"PEOP", "", "", "p IY p"},
	{"POW", "", "", "p AW"},
	{"PUT", "", " ", "p UH t"},
	{"P", "", "", "p"},

	{"QUAR", "", "", "k w AO r"},
	{"QU", "", "", "k w"},
	{"Q", "", "", "k"},

	{"RE", " ", "^#", "r IY"},
	{"R", "", "", "r"},

	{"SH", "", "", "SH"},
	{"SION", "#", "", "ZH AX n"},
	{"SOME", "", "", "s AH m"},
	{"SUR", "#", "#", "ZH ER"},
	{"SUR", "", "#", "SH ER"},
	{"SU", "#", "#", "ZH UW"},
	{"SSU", "#", "#", "SH UW"},
	{"SED", "#", " ", "z d"},
	{"S", "#", "#", "z"},
	{"SAID", "", "", "s EH d"},
	{"SION", "^", "", "SH AX n"},
	{"S", "", "S", ""},
	{"S", ".", " ", "z"},
	{"S", "#:.E", " ", "z"},
	{"S", "#:^##", " ", "z"},
	{"S", "#:^#", " ", "s"},
	{"S", "U", " ", "s"},
	{"S", " :#", " ", "z"},
	{"SCH", " ", "", "s k"},
	{"S", "", "C+", ""},
	{"SM", "#", "", "z m"},
	{"SN", "#", "'", "z AX n"},
	{"S", "", "", "s"},

	{"THE", " ", " ", "DH AX"},
	{"TO", "", " ", "t UW"},
	{"THAT", "", " ", "DH AE t"},
	{"THIS", " ", " ", "DH IH s"},
	{"THEY", " ", "", "DH EY"},
	{"THERE", " ", "", "DH EH r"},
	{"THER", "", "", "DH ER"},
	{"THEIR", "", "", "DH EH r"},
	{"THAN", " ", " ", "DH AE n"},
	{"THEM", " ", " ", "DH EH m"},
	{"THESE", "", " ", "DH IY z"},
	{"THEN", " ", "", "DH EH n"},
	{"THROUGH", "", "", "TH r UW"},
	{"THOSE", "", "", "DH OW z"},
	{"THOUGH", "", " ", "DH OW"},
	{"THUS", " ", "", "DH AH s"},
	{"TH", "", "", "TH"},
	{"TED", "#:", " ", "t IH d"},
	{"TI", "S", "#N", "CH"},
	{"TI", "", "O", "SH"},
	{"TI", "", "A", "SH"},
	{"TIEN", "", "", "SH AX n"},
	{"TUR", "", "#", "CH ER"},
	{"TU", "", "A", "CH UW"},
	{"TWO", " ", "", "t UW"},
	{"T", "", "", "t"},

	{"UN", " ", "I", "y UW n"},
	{"UN", " ", "", "AH n"},
	{"UPON", " ", "", "AX p AO n"},
	{"UR", "T", "#", "UH r"},
	{"UR", "S", "#", "UH r"},
	{"UR", "R", "#", "UH r"},
	{"UR", "D", "#", "UH r"},
	{"UR", "L", "#", "UH r"},
	{"UR", "Z", "#", "UH r"},
	{"UR", "N", "#", "UH r"},
	{"UR", "J", "#", "UH r"},
	{"UR", "TH", "#", "UH r"},
	{"UR", "CH", "#", "UH r"},
	{"UR", "SH", "#", "UH r"},
	{"UR", "", "#", "y UH r"},
	{"UR", "", "", "ER"},
	{"U", "", "^ ", "AH"},
	{"U", "", "^^", "AH"},
	{"UY", "", "", "AY"},
	{"U", " G", "#", ""},
	{"U", "G", "%", ""},
	{"U", "G", "#", "w"},
	{"U", "#N", "", "y UW"},
	{"U", "T", "", "UW"},
	{"U", "S", "", "UW"},
	{"U", "R", "", "UW"},
	{"U", "D", "", "UW"},
	{"U", "L", "", "UW"},
	{"U", "Z", "", "UW"},
	{"U", "N", "", "UW"},
	{"U", "J", "", "UW"},
	{"U", "TH", "", "UW"},
	{"U", "CH", "", "UW"},
	{"U", "SH", "", "UW"},
	{"U", "", "", "y UW"},

	{"VIEW", "", "", "v y UW"},
	{"V", "", "", "v"},

	{"WERE", " ", "", "w ER"},
	{"WA", "", "S", "w AA"},
	{"WA", "", "T", "w AA"},
	{"WHERE", "", "", "WH EH r"},
	{"WHAT", "", "", "WH AA t"},
	{"WHOL", "", "", "HH OW l"},
	{"WHO", "", "", "HH UW"},
	{"WH", "", "", "WH"},
	{"WAR", "", "", "w AO r"},
	{"WOR", "", "^", "w ER"},
	{"WR", "", "", "r"},
	{"W", "", "", "w"},

	{"X", "", "", "k s"},

	{"YOUNG", "", "", "y AH NG"},
	{"YOU", " ", "", "y UW"},
	{"YES", " ", "", "y EH s"},
	{"Y", " ", "", "y"},
	{"Y", "#:^", " ", "IY"},
	{"Y", "#:^", "I", "IY"},
	{"Y", " :", " ", "AY"},
	{"Y", " :", "#", "AY"},
	{"Y", " :", "^+:#", "IH"},
	{"Y", " :", "^#", "AY"},
	{"Y", "", "", "IH"},

	{"Z", "", "", "z"},
}
