package pipeline

import "strings"

// regionTable maps county, city, and borough spellings to canonical
// top-level regions. The table is many-to-one and matched exactly after
// trimming; variant spellings seen in snapshots (including trailing-space
// artifacts) are kept as explicit keys.
var regionTable = map[string]string{
	// London boroughs (all 32 + City)
	"Camden": "London", "City of London": "London", "Farringdon": "London",
	"Hackney": "London", "Hammersmith": "London", "Hammersmith & Fulham": "London",
	"Islington": "London", "Lambeth": "London", "Lewisham": "London",
	"Southwark": "London", "Tower Hamlets": "London", "Wandsworth": "London",
	"Westminster": "London", "London": "London", "Middlesex": "London",
	"Hillingdon": "London", "Hounslow": "London", "Brent": "London",
	"Barnet": "London", "Enfield": "London", "Haringey": "London",
	"Waltham Forest": "London", "Redbridge": "London", "Newham": "London",
	"Barking": "London", "Barking and Dagenham": "London",
	"Havering": "London", "Bexley": "London", "Bromley": "London",
	"Croydon": "London", "Sutton": "London", "Merton": "London",
	"Kingston": "London", "Kingston upon Thames": "London",
	"Richmond": "London", "Richmond upon Thames": "London",
	"Ealing": "London", "Greenwich": "London", "Woolwich": "London",
	"Harrow": "London", "Kensington and Chelsea": "London",
	"Kensington": "London", "Chelsea": "London",
	// Scotland
	"Edinburgh": "Scotland", "Glasgow": "Scotland", "Lanarkshire": "Scotland",
	"South Lanarkshire": "Scotland", "North Lanarkshire": "Scotland",
	"Fife": "Scotland", "Renfrewshire": "Scotland", "East Renfrewshire": "Scotland",
	"Ayrshire": "Scotland", "North Ayrshire": "Scotland", "East Ayrshire": "Scotland",
	"South Ayrshire": "Scotland",
	"Inverness-shire": "Scotland", "Highland": "Scotland", "Highlands": "Scotland",
	"Angus": "Scotland", "Aberdeenshire": "Scotland", "Aberdeen": "Scotland",
	"Perth and Kinross": "Scotland", "Perth": "Scotland",
	"Dundee": "Scotland", "Stirling": "Scotland",
	"Dunbartonshire": "Scotland", "West Dunbartonshire": "Scotland",
	"East Dunbartonshire": "Scotland",
	"Borders": "Scotland", "Scottish Borders": "Scotland",
	"Falkirk": "Scotland", "Clackmannanshire": "Scotland",
	"Midlothian": "Scotland", "East Lothian": "Scotland", "West Lothian": "Scotland",
	"Argyll and Bute": "Scotland", "Dundee City": "Scotland",
	"Dumfries and Galloway": "Scotland", "Moray": "Scotland",
	"Inverclyde": "Scotland",
	// Wales
	"Glamorgan": "Wales", "Vale of Glamorgan": "Wales",
	"Gwent": "Wales", "Dyfed": "Wales", "Gwynedd": "Wales",
	"Clwyd": "Wales", "Powys": "Wales", "Cardiff": "Wales", "Swansea": "Wales",
	"Carmarthenshire": "Wales", "Pembrokeshire": "Wales", "Ceredigion": "Wales",
	"Wrexham": "Wales", "Conwy": "Wales", "Bridgend": "Wales",
	"Blaenau Gwent": "Wales", "Caerphilly": "Wales", "Monmouthshire": "Wales",
	"Rhondda Cynon Taf": "Wales", "Neath Port Talbot": "Wales",
	"Torfaen": "Wales", "Newport": "Wales", "Flintshire": "Wales",
	"Denbighshire": "Wales", "Anglesey": "Wales", "Isle of Anglesey": "Wales",
	"Merthyr Tydfil": "Wales", "Rhondda Cynon Taff": "Wales",
	// Northern Ireland
	"County Antrim": "Northern Ireland", "County Down": "Northern Ireland",
	"County Armagh": "Northern Ireland", "County Tyrone": "Northern Ireland",
	"County Londonderry": "Northern Ireland", "County Fermanagh": "Northern Ireland",
	"Belfast": "Northern Ireland", "Antrim": "Northern Ireland",
	// Ireland (Republic)
	"County Dublin": "Ireland", "Dublin": "Ireland",
	"County Cork": "Ireland", "County Galway": "Ireland",
	"County Limerick": "Ireland", "County Waterford": "Ireland",
	"County Wexford": "Ireland", "County Kildare": "Ireland",
	// South East
	"Kent": "South East", "Surrey": "South East", "Sussex": "South East",
	"East Sussex": "South East", "West Sussex": "South East",
	"Hampshire": "South East", "Berkshire": "South East", "Oxfordshire": "South East",
	"Buckinghamshire": "South East", "Hertfordshire": "South East",
	"Essex": "South East", "Bedfordshire": "South East",
	"Isle of Wight": "South East",
	// South West
	"Devon": "South West", "Cornwall": "South West", "Somerset": "South West",
	"Dorset": "South West", "Wiltshire": "South West", "Gloucestershire": "South West",
	"Bristol": "South West", "Bath": "South West",
	"Bath and North East Somerset": "South West",
	"South Gloucestershire": "South West",
	// East
	"Norfolk": "East of England", "Suffolk": "East of England",
	"Cambridgeshire": "East of England", "Northamptonshire": "East of England",
	// Midlands
	"West Midlands": "Midlands", "Warwickshire": "Midlands",
	"Staffordshire": "Midlands", "Worcestershire": "Midlands",
	"Shropshire": "Midlands", "Herefordshire": "Midlands",
	"Derbyshire": "Midlands", "Nottinghamshire": "Midlands",
	"Leicestershire": "Midlands", "Lincolnshire": "Midlands",
	"Rutland": "Midlands", "Birmingham": "Midlands",
	"Coventry": "Midlands", "Solihull": "Midlands",
	"Telford & Wrekin": "Midlands",
	// North West
	"Greater Manchester": "North West", "Lancashire": "North West",
	"Merseyside": "North West", "Cheshire": "North West", "Cumbria": "North West",
	"Manchester": "North West", "Liverpool": "North West",
	"Stockport": "North West", "Wigan": "North West", "Bolton": "North West",
	"Greater Manchester ": "North West",
	// North East
	"Tyne and Wear": "North East", "County Durham": "North East",
	"Northumberland": "North East", "Cleveland": "North East",
	"Newcastle upon Tyne": "North East", "Sunderland": "North East",
	"Gateshead": "North East", "Durham": "North East",
	"Teesside": "North East", "Middlesbrough": "North East",
	"Stockton-on-Tees": "North East",
	// Yorkshire
	"South Yorkshire": "Yorkshire", "West Yorkshire": "Yorkshire",
	"North Yorkshire": "Yorkshire", "East Riding of Yorkshire": "Yorkshire",
	"Sheffield": "Yorkshire", "Leeds": "Yorkshire", "York": "Yorkshire",
	"Bradford": "Yorkshire", "Hull": "Yorkshire",
	"Kingston Upon Hull": "Yorkshire", "Wakefield": "Yorkshire",
	"Calderdale": "Yorkshire", "Barnsley": "Yorkshire", "Doncaster": "Yorkshire",
	"Rotherham": "Yorkshire", "Kirklees": "Yorkshire",
}

// ResolveRegion maps a free-text county label to its canonical region.
// Unmapped values pass through trimmed and become their own region.
func ResolveRegion(county string) string {
	trimmed := strings.TrimSpace(county)
	if region, ok := regionTable[trimmed]; ok {
		return region
	}
	return trimmed
}
