package gazetteer

// Builtin reference tables. Populations are approximate city-proper counts;
// they only matter for relative ordering during disambiguation.

const usa = "United States"

var stateTable = map[string]string{
	"al": "Alabama", "ak": "Alaska", "az": "Arizona", "ar": "Arkansas",
	"ca": "California", "co": "Colorado", "ct": "Connecticut", "de": "Delaware",
	"fl": "Florida", "ga": "Georgia", "hi": "Hawaii", "id": "Idaho",
	"il": "Illinois", "in": "Indiana", "ia": "Iowa", "ks": "Kansas",
	"ky": "Kentucky", "la": "Louisiana", "me": "Maine", "md": "Maryland",
	"ma": "Massachusetts", "mi": "Michigan", "mn": "Minnesota", "ms": "Mississippi",
	"mo": "Missouri", "mt": "Montana", "ne": "Nebraska", "nv": "Nevada",
	"nh": "New Hampshire", "nj": "New Jersey", "nm": "New Mexico", "ny": "New York",
	"nc": "North Carolina", "nd": "North Dakota", "oh": "Ohio", "ok": "Oklahoma",
	"or": "Oregon", "pa": "Pennsylvania", "ri": "Rhode Island", "sc": "South Carolina",
	"sd": "South Dakota", "tn": "Tennessee", "tx": "Texas", "ut": "Utah",
	"vt": "Vermont", "va": "Virginia", "wa": "Washington", "wv": "West Virginia",
	"wi": "Wisconsin", "wy": "Wyoming", "dc": "District of Columbia",
}

type countryEntry struct {
	name    string
	aliases []string
}

var countryTable = []countryEntry{
	{name: usa, aliases: []string{"usa", "us", "america", "united states of america"}},
	{name: "United Kingdom", aliases: []string{"uk", "great britain", "england"}},
	{name: "Canada"},
	{name: "Mexico"},
	{name: "France"},
	{name: "Germany"},
	{name: "Italy"},
	{name: "Spain"},
	{name: "Portugal"},
	{name: "Netherlands", aliases: []string{"holland"}},
	{name: "Belgium"},
	{name: "Switzerland"},
	{name: "Austria"},
	{name: "Ireland"},
	{name: "Norway"},
	{name: "Sweden"},
	{name: "Denmark"},
	{name: "Finland"},
	{name: "Iceland"},
	{name: "Greece"},
	{name: "Czechia", aliases: []string{"czech republic"}},
	{name: "Hungary"},
	{name: "Poland"},
	{name: "Russia"},
	{name: "Ukraine"},
	{name: "Turkey"},
	{name: "Egypt"},
	{name: "Morocco"},
	{name: "South Africa"},
	{name: "Israel"},
	{name: "India"},
	{name: "China"},
	{name: "Japan"},
	{name: "South Korea", aliases: []string{"korea"}},
	{name: "Thailand"},
	{name: "Vietnam"},
	{name: "Singapore"},
	{name: "Indonesia"},
	{name: "Australia"},
	{name: "New Zealand"},
	{name: "Brazil"},
	{name: "Argentina"},
	{name: "Chile"},
	{name: "Peru"},
	{name: "Colombia"},
	{name: "Costa Rica"},
}

var cityTable = []Entry{
	{City: "New York", State: "New York", Country: usa, Population: 8336817},
	{City: "Los Angeles", State: "California", Country: usa, Population: 3979576},
	{City: "Chicago", State: "Illinois", Country: usa, Population: 2693976},
	{City: "Houston", State: "Texas", Country: usa, Population: 2320268},
	{City: "Phoenix", State: "Arizona", Country: usa, Population: 1680992},
	{City: "San Antonio", State: "Texas", Country: usa, Population: 1547253},
	{City: "San Diego", State: "California", Country: usa, Population: 1423851},
	{City: "Dallas", State: "Texas", Country: usa, Population: 1343573},
	{City: "San Jose", State: "California", Country: usa, Population: 1021795},
	{City: "San Jose", Country: "Costa Rica", Population: 342188},
	{City: "Austin", State: "Texas", Country: usa, Population: 978908},
	{City: "Seattle", State: "Washington", Country: usa, Population: 753675},
	{City: "Denver", State: "Colorado", Country: usa, Population: 727211},
	{City: "Washington", State: "District of Columbia", Country: usa, Population: 705749},
	{City: "Boston", State: "Massachusetts", Country: usa, Population: 692600},
	{City: "Nashville", State: "Tennessee", Country: usa, Population: 670820},
	{City: "Portland", State: "Oregon", Country: usa, Population: 654741},
	{City: "Portland", State: "Maine", Country: usa, Population: 66882},
	{City: "Las Vegas", State: "Nevada", Country: usa, Population: 651319},
	{City: "Miami", State: "Florida", Country: usa, Population: 467963},
	{City: "New Orleans", State: "Louisiana", Country: usa, Population: 390144},
	{City: "Honolulu", State: "Hawaii", Country: usa, Population: 345064},
	{City: "Anchorage", State: "Alaska", Country: usa, Population: 291247},
	{City: "San Francisco", State: "California", Country: usa, Population: 881549},
	{City: "Columbus", State: "Ohio", Country: usa, Population: 898553},
	{City: "Columbus", State: "Georgia", Country: usa, Population: 195769},
	{City: "Springfield", State: "Missouri", Country: usa, Population: 167882},
	{City: "Springfield", State: "Massachusetts", Country: usa, Population: 153606},
	{City: "Springfield", State: "Illinois", Country: usa, Population: 114394},
	{City: "Salem", State: "Oregon", Country: usa, Population: 174365},
	{City: "Salem", State: "Massachusetts", Country: usa, Population: 43350},
	{City: "Richmond", State: "Virginia", Country: usa, Population: 230436},
	{City: "Charleston", State: "South Carolina", Country: usa, Population: 150227},
	{City: "Charleston", State: "West Virginia", Country: usa, Population: 46536},
	{City: "Savannah", State: "Georgia", Country: usa, Population: 147780},
	{City: "Albany", State: "New York", Country: usa, Population: 96460},
	{City: "Cambridge", State: "Massachusetts", Country: usa, Population: 118927},
	{City: "Cambridge", Country: "United Kingdom", Population: 145700},
	{City: "Birmingham", Country: "United Kingdom", Population: 1141816},
	{City: "Birmingham", State: "Alabama", Country: usa, Population: 200733},
	{City: "Manchester", Country: "United Kingdom", Population: 553230},
	{City: "Manchester", State: "New Hampshire", Country: usa, Population: 112673},
	{City: "Vancouver", Country: "Canada", Population: 675218},
	{City: "Vancouver", State: "Washington", Country: usa, Population: 184463},
	{City: "Toronto", Country: "Canada", Population: 2930000},
	{City: "Montreal", Country: "Canada", Population: 1780000},
	{City: "London", Country: "United Kingdom", Population: 8982000},
	{City: "London", Country: "Canada", Population: 404699},
	{City: "Paris", Country: "France", Population: 2161000},
	{City: "Paris", State: "Texas", Country: usa, Population: 24839},
	{City: "Berlin", Country: "Germany", Population: 3769000},
	{City: "Munich", Country: "Germany", Population: 1472000},
	{City: "Hamburg", Country: "Germany", Population: 1841000},
	{City: "Rome", Country: "Italy", Population: 2873000},
	{City: "Naples", Country: "Italy", Population: 967069},
	{City: "Naples", State: "Florida", Country: usa, Population: 22088},
	{City: "Venice", Country: "Italy", Population: 261905},
	{City: "Milan", Country: "Italy", Population: 1352000},
	{City: "Madrid", Country: "Spain", Population: 3223000},
	{City: "Barcelona", Country: "Spain", Population: 1620000},
	{City: "Lisbon", Country: "Portugal", Population: 504718},
	{City: "Amsterdam", Country: "Netherlands", Population: 821752},
	{City: "Brussels", Country: "Belgium", Population: 1191604},
	{City: "Zurich", Country: "Switzerland", Population: 402762},
	{City: "Geneva", Country: "Switzerland", Population: 201818},
	{City: "Vienna", Country: "Austria", Population: 1897000},
	{City: "Dublin", Country: "Ireland", Population: 544107},
	{City: "Dublin", State: "Ohio", Country: usa, Population: 49328},
	{City: "Oslo", Country: "Norway", Population: 634293},
	{City: "Stockholm", Country: "Sweden", Population: 975551},
	{City: "Copenhagen", Country: "Denmark", Population: 626508},
	{City: "Helsinki", Country: "Finland", Population: 655281},
	{City: "Reykjavik", Country: "Iceland", Population: 131136},
	{City: "Athens", Country: "Greece", Population: 664046},
	{City: "Athens", State: "Georgia", Country: usa, Population: 126913},
	{City: "Prague", Country: "Czechia", Population: 1309000},
	{City: "Budapest", Country: "Hungary", Population: 1752000},
	{City: "Warsaw", Country: "Poland", Population: 1790658},
	{City: "Moscow", Country: "Russia", Population: 12506000},
	{City: "Moscow", State: "Idaho", Country: usa, Population: 25435},
	{City: "Odessa", Country: "Ukraine", Population: 1017699},
	{City: "Odessa", State: "Texas", Country: usa, Population: 118918},
	{City: "Istanbul", Country: "Turkey", Population: 15460000},
	{City: "Cairo", Country: "Egypt", Population: 9540000},
	{City: "Marrakesh", Country: "Morocco", Population: 928850},
	{City: "Cape Town", Country: "South Africa", Population: 433688},
	{City: "Tel Aviv", Country: "Israel", Population: 460613},
	{City: "Mumbai", Country: "India", Population: 12442373},
	{City: "Delhi", Country: "India", Population: 11007835},
	{City: "Beijing", Country: "China", Population: 21540000},
	{City: "Shanghai", Country: "China", Population: 24280000},
	{City: "Hong Kong", Country: "China", Population: 7482500},
	{City: "Tokyo", Country: "Japan", Population: 13960000},
	{City: "Kyoto", Country: "Japan", Population: 1475000},
	{City: "Osaka", Country: "Japan", Population: 2691000},
	{City: "Seoul", Country: "South Korea", Population: 9776000},
	{City: "Bangkok", Country: "Thailand", Population: 10539000},
	{City: "Hanoi", Country: "Vietnam", Population: 8053663},
	{City: "Singapore", Country: "Singapore", Population: 5685807},
	{City: "Jakarta", Country: "Indonesia", Population: 10562088},
	{City: "Sydney", Country: "Australia", Population: 5312163},
	{City: "Melbourne", Country: "Australia", Population: 5078193},
	{City: "Melbourne", State: "Florida", Country: usa, Population: 84678},
	{City: "Auckland", Country: "New Zealand", Population: 1657000},
	{City: "Wellington", Country: "New Zealand", Population: 212700},
	{City: "Rio de Janeiro", Country: "Brazil", Population: 6748000},
	{City: "Sao Paulo", Country: "Brazil", Population: 12330000},
	{City: "Buenos Aires", Country: "Argentina", Population: 3075646},
	{City: "Santiago", Country: "Chile", Population: 6257516},
	{City: "Lima", Country: "Peru", Population: 9751717},
	{City: "Bogota", Country: "Colombia", Population: 7412566},
}
