package analyzer

// stopWords are dropped from documents and queries. Words shorter than the
// minimum term length never reach this list, so it holds only three letters
// and up.
var stopWords = toSet([]string{
	"act", "adj", "all", "and", "any", "are", "ask", "but", "can", "com",
	"did", "due", "edu", "end", "etc", "far", "few", "fix", "for", "get",
	"got", "had", "has", "hed", "her", "hes", "hid", "him", "his", "how",
	"ill", "inc", "itd", "its", "ive", "let", "ltd", "may", "mrs", "mug",
	"nay", "new", "non", "nor", "nos", "not", "now", "off", "old", "one",
	"ord", "our", "out", "own", "per", "put", "que", "ran", "ref", "run",
	"saw", "say", "sec", "see", "she", "six", "sub", "sup", "the", "til",
	"tip", "too", "try", "two", "ups", "use", "via", "viz", "vol", "was",
	"way", "wed", "who", "why", "www", "yes", "yet", "you", "able", "abst",
	"also", "aren", "auth", "away", "back", "been", "biol", "both", "came",
	"cant", "come", "date", "does", "done", "dont", "down", "each", "else",
	"even", "ever", "five", "four", "from", "gave", "gets", "give", "goes",
	"gone", "have", "here", "hers", "home", "into", "isnt", "itll", "just",
	"keep", "kept", "know", "last", "less", "lest", "lets", "like", "line",
	"look", "made", "make", "many", "mean", "miss", "more", "most", "much",
	"must", "name", "near", "need", "next", "nine", "none", "okay", "once",
	"ones", "only", "onto", "ours", "over", "page", "part", "past", "plus",
	"refs", "said", "same", "says", "seem", "seen", "self", "sent", "shed",
	"shes", "show", "some", "soon", "stop", "such", "sure", "take", "tell",
	"than", "that", "them", "then", "they", "this", "thou", "thru", "thus",
	"took", "unto", "upon", "used", "uses", "very", "vols", "want", "well",
	"went", "were", "weve", "what", "when", "whim", "whod", "whom", "whos",
	"will", "wish", "with", "wont", "youd", "your", "zero", "about", "above",
	"added", "after", "again", "alone", "along", "among", "arent", "arise",
	"aside", "begin", "being", "below", "brief", "cause", "comes", "could",
	"didnt", "doing", "eight", "et-al", "every", "fifth", "first", "forth",
	"found", "given", "gives", "hasnt", "hence", "heres", "index", "keeps",
	"known", "knows", "later", "least", "liked", "looks", "makes", "maybe",
	"means", "might", "needs", "never", "noone", "noted", "often", "other",
	"ought", "owing", "pages", "proud", "quite", "right", "seems", "seven",
	"shall", "shell", "shown", "shows", "since", "sorry", "still", "taken",
	"tends", "thank", "thanx", "thats", "their", "there", "these", "theyd",
	"think", "those", "tried", "tries", "truly", "twice", "under", "until",
	"using", "value", "wants", "wasnt", "whats", "where", "which", "while",
	"whole", "wholl", "whose", "words", "world", "would", "youll", "youre",
	"yours", "youve", "across", "almost", "always", "anyhow", "anyone",
	"anyway", "around", "asking", "became", "become", "before", "begins",
	"behind", "beside", "beyond", "cannot", "causes", "doesnt", "during",
	"effect", "eighty", "either", "ending", "enough", "except", "former",
	"giving", "gotten", "hardly", "havent", "having", "hereby", "herein",
	"hither", "indeed", "inward", "itself", "lately", "latter", "likely",
	"little", "mainly", "merely", "mostly", "myself", "namely", "nearly",
	"ninety", "nobody", "obtain", "others", "placed", "please", "poorly",
	"rather", "really", "recent", "saying", "seeing", "seemed", "selves",
	"should", "showed", "showns", "taking", "thanks", "thatll", "thatve",
	"theirs", "thence", "thered", "theres", "theyll", "theyre", "theyve",
	"though", "throug", "toward", "trying", "unless", "unlike", "useful",
	"werent", "whatll", "whence", "wheres", "widely", "within", "affects",
	"against", "already", "amongst", "another", "anybody", "anymore",
	"anyways", "awfully", "because", "becomes", "believe", "besides",
	"between", "briefly", "certain", "contain", "couldnt", "follows",
	"further", "getting", "happens", "herself", "himself", "howbeit",
	"however", "hundred", "instead", "largely", "looking", "million",
	"neither", "nothing", "nowhere", "omitted", "outside", "overall",
	"perhaps", "present", "quickly", "readily", "regards", "related",
	"results", "section", "seeming", "several", "similar", "somehow",
	"someone", "specify", "suggest", "thereby", "therein", "therell",
	"thereof", "therere", "thereto", "thereve", "thoughh", "through",
	"towards", "usually", "various", "welcome", "whereas", "whereby",
	"wherein", "whether", "whither", "whoever", "willing", "without",
	"wouldnt", "actually", "affected", "although", "announce", "anything",
	"anywhere", "becoming", "contains", "everyone", "followed", "formerly",
	"hereupon", "latterly", "meantime", "moreover", "normally", "obtained",
	"possible", "possibly", "probably", "promptly", "provides", "recently",
	"research", "resulted", "shouldnt", "slightly", "somebody", "somethan",
	"sometime", "somewhat", "strongly", "thousand", "together", "unlikely",
	"usefully", "whatever", "whenever", "wherever", "whomever", "yourself",
	"according", "affecting", "available", "beginning", "certainly",
	"different", "downwards", "elsewhere", "everybody", "following",
	"hereafter", "immediate", "important", "invention", "meanwhile",
	"necessary", "obviously", "otherwise", "ourselves", "primarily",
	"regarding", "resulting", "similarly", "something", "sometimes",
	"somewhere", "specified", "therefore", "thereupon", "whereupon",
	"accordance", "afterwards", "apparently", "beforehand", "beginnings",
	"containing", "especially", "everything", "everywhere", "importance",
	"particular", "previously", "regardless", "relatively", "specifying",
	"themselves", "thereafter", "throughout", "usefulness", "whereafter",
	"yourselves", "accordingly", "furthermore", "immediately", "information",
	"necessarily", "nonetheless", "potentially", "significant",
	"nevertheless", "particularly", "respectively", "specifically",
	"successfully", "sufficiently", "approximately", "predominantly",
	"significantly", "substantially", "unfortunately",
})

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
