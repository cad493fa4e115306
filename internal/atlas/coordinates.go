package atlas

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64
	Lon float64
}

// coordinates maps free-form location strings to coordinates. Keys include
// full canonical strings, city-only strings, state-postal forms, known typo
// variants, and regional placeholders that map to a representative centroid
// so downstream visualization never silently drops a posting.
var coordinates = map[string]Coord{
	// United States - Major Cities
	"San Francisco, California, United States": {37.7749, -122.4194},
	"San Francisco, CA, United States": {37.7749, -122.4194},
	"San Francisco": {37.7749, -122.4194},
	"New York, New York, United States": {40.7128, -74.006},
	"New York, NY, United States": {40.7128, -74.006},
	"New York": {40.7128, -74.006},
	"NYC": {40.7128, -74.006},
	"New York City": {40.7128, -74.006},
	"Los Angeles, California, United States": {34.0522, -118.2437},
	"Los Angeles, CA, United States": {34.0522, -118.2437},
	"Los Angeles": {34.0522, -118.2437},
	"Chicago, Illinois, United States": {41.8781, -87.6298},
	"Chicago, IL, United States": {41.8781, -87.6298},
	"Chicago": {41.8781, -87.6298},
	"Seattle, Washington, United States": {47.6062, -122.3321},
	"Seattle, WA, United States": {47.6062, -122.3321},
	"Seattle": {47.6062, -122.3321},
	"Austin, Texas, United States": {30.2672, -97.7431},
	"Austin, TX, United States": {30.2672, -97.7431},
	"Austin": {30.2672, -97.7431},
	"Boston, Massachusetts, United States": {42.3601, -71.0589},
	"Boston, MA, United States": {42.3601, -71.0589},
	"Boston": {42.3601, -71.0589},
	"Cambridge, Massachusetts, United States": {42.3736, -71.1097},
	"Cambridge, Massachusetts, US": {42.3736, -71.1097},
	"Cambridge, MA, United States": {42.3736, -71.1097},
	"Cambridge, MA": {42.3736, -71.1097},
	"Cambridge": {42.3736, -71.1097},
	"Denver, Colorado, United States": {39.7392, -104.9903},
	"Denver, CO, United States": {39.7392, -104.9903},
	"Denver": {39.7392, -104.9903},
	"Washington, District of Columbia, United States": {38.9072, -77.0369},
	"Washington, DC, United States": {38.9072, -77.0369},
	"Washington": {38.9072, -77.0369},
	"Miami, Florida, United States": {25.7617, -80.1918},
	"Miami, FL, United States": {25.7617, -80.1918},
	"Miami": {25.7617, -80.1918},
	"Portland, Oregon, United States": {45.5152, -122.6784},
	"Portland, OR, United States": {45.5152, -122.6784},
	"Portland": {45.5152, -122.6784},
	"Atlanta, Georgia, United States": {33.749, -84.388},
	"Atlanta, GA, United States": {33.749, -84.388},
	"Atlanta": {33.749, -84.388},
	"Dallas, Texas, United States": {32.7767, -96.797},
	"Dallas, TX, United States": {32.7767, -96.797},
	"Dallas": {32.7767, -96.797},
	"Memphis, Tennessee, United States": {35.1495, -90.049},
	"Memphis, TN, United States": {35.1495, -90.049},
	"Memphis, TN": {35.1495, -90.049},
	"Memphis": {35.1495, -90.049},
	"Phoenix, Arizona, United States": {33.4484, -112.074},
	"Phoenix, AZ, United States": {33.4484, -112.074},
	"Phoenix": {33.4484, -112.074},
	"San Diego, California, United States": {32.7157, -117.1611},
	"San Diego, CA, United States": {32.7157, -117.1611},
	"San Diego": {32.7157, -117.1611},
	"Philadelphia, Pennsylvania, United States": {39.9526, -75.1652},
	"Philadelphia, PA, United States": {39.9526, -75.1652},
	"Philadelphia": {39.9526, -75.1652},
	"Palo Alto, California, United States": {37.4419, -122.1430},
	"Palo Alto, CA, United States": {37.4419, -122.1430},
	"Palo Alto": {37.4419, -122.1430},
	"Mountain View, California, United States": {37.3861, -122.0839},
	"Mountain View, CA, United States": {37.3861, -122.0839},
	"Mountain View": {37.3861, -122.0839},
	"Novato, California, United States": {38.1074, -122.5697},
	"Novato, CA, United States": {38.1074, -122.5697},
	"Novato": {38.1074, -122.5697},
	"Sparks Glencoe, Maryland, United States": {39.5401, -76.6447},
	"Sparks Glencoe, MD, United States": {39.5401, -76.6447},
	"Moorpark, California, United States": {34.2856, -118.8820},
	"Moorpark, CA, United States": {34.2856, -118.8820},
	// Canada
	"Toronto, Ontario, Canada": {43.6532, -79.3832},
	"Toronto": {43.6532, -79.3832},
	"Vancouver, British Columbia, Canada": {49.2827, -123.1207},
	"Vancouver": {49.2827, -123.1207},
	"Montréal, Quebec, Canada": {45.5017, -73.5673},
	"Montreal, Quebec, Canada": {45.5017, -73.5673},
	"Montreal": {45.5017, -73.5673},
	"Québec City, Quebec, Canada": {46.8139, -71.2080},
	"Québec City, QC, Canada": {46.8139, -71.2080},
	"Québec City, QC": {46.8139, -71.2080},
	"Québec City, QC - Data Center": {46.8139, -71.2080},
	"Quebec City, Quebec, Canada": {46.8139, -71.2080},
	"Quebec City, QC, Canada": {46.8139, -71.2080},
	"Quebec City, QC": {46.8139, -71.2080},
	"Quebec City": {46.8139, -71.2080},
	"Calgary, Alberta, Canada": {51.0447, -114.0719},
	"Calgary": {51.0447, -114.0719},
	"Ottawa, Ontario, Canada": {45.4215, -75.6972},
	"Ottawa": {45.4215, -75.6972},
	"Nova Scotia, Canada": {44.6820, -63.7443},
	"Quebec, Canada": {46.8139, -71.2080},
	// United Kingdom
	"London, England, United Kingdom": {51.5074, -0.1278},
	"London, United Kingdom": {51.5074, -0.1278},
	"London": {51.5074, -0.1278},
	"Manchester, England, United Kingdom": {53.4808, -2.2426},
	"Manchester": {53.4808, -2.2426},
	"Edinburgh, Scotland, United Kingdom": {55.9533, -3.1883},
	"Edinburgh": {55.9533, -3.1883},
	"Birmingham, England, United Kingdom": {52.4862, -1.8904},
	"Birmingham": {52.4862, -1.8904},
	// Europe
	"Berlin, Germany": {52.52, 13.405},
	"Berlin": {52.52, 13.405},
	"Paris, France": {48.8566, 2.3522},
	"Paris": {48.8566, 2.3522},
	"Anywhere in France": {46.2276, 2.2137}, // Geographic center of France
	"France": {46.2276, 2.2137},
	"Amsterdam, Netherlands": {52.3676, 4.9041},
	"Amsterdam": {52.3676, 4.9041},
	"Barcelona, Spain": {41.3851, 2.1734},
	"Barcelona": {41.3851, 2.1734},
	"Madrid, Spain": {40.4168, -3.7038},
	"Madrid": {40.4168, -3.7038},
	"Anywhere in Spain": {40.4168, -3.7038}, // Madrid (center of Spain)
	"Spain": {40.4168, -3.7038},
	"Rome, Italy": {41.9028, 12.4964},
	"Rome": {41.9028, 12.4964},
	"Milan, Italy": {45.4642, 9.19},
	"Milan": {45.4642, 9.19},
	"Vienna, Austria": {48.2082, 16.3738},
	"Vienna": {48.2082, 16.3738},
	"Zurich, Switzerland": {47.3769, 8.5417},
	"Zurich": {47.3769, 8.5417},
	"Zürich, Switzerland": {47.3769, 8.5417},
	"Zürich, CH": {47.3769, 8.5417},
	"Zürich": {47.3769, 8.5417},
	"Stockholm, Sweden": {59.3293, 18.0686},
	"Stockholm": {59.3293, 18.0686},
	"Malmö, Sweden": {55.6059, 13.0007},
	"Malmö": {55.6059, 13.0007},
	"Malmoe, Sweden": {55.6059, 13.0007},
	"Malmoe": {55.6059, 13.0007},
	"Copenhagen, Denmark": {55.6761, 12.5683},
	"Copenhagen": {55.6761, 12.5683},
	"Dublin, Ireland": {53.3498, -6.2603},
	"Dublin": {53.3498, -6.2603},
	"Brussels, Belgium": {50.8503, 4.3517},
	"Brussels": {50.8503, 4.3517},
	"Anywhere in Belgium": {50.8503, 4.3517}, // Brussels (center of Belgium)
	"Belgium": {50.8503, 4.3517},
	"Lisbon, Portugal": {38.7223, -9.1393},
	"Lisbon": {38.7223, -9.1393},
	"Prague, Czech Republic": {50.0755, 14.4378},
	"Prague": {50.0755, 14.4378},
	"Bratislava, Slovakia": {48.1486, 17.1077},
	"Slovakia": {48.1486, 17.1077},
	"Cologne, Germany": {50.9375, 6.9603},
	"Cologne": {50.9375, 6.9603},
	"Köln, Germany": {50.9375, 6.9603},
	"Köln": {50.9375, 6.9603},
	"Warsaw, Poland": {52.2297, 21.0122},
	"Warsaw": {52.2297, 21.0122},
	"Sofia, Bulgaria": {42.6977, 23.3219},
	"Sofia": {42.6977, 23.3219},
	"Munich, Germany": {48.1351, 11.5820},
	"Munich": {48.1351, 11.5820},
	"Luxembourg": {49.6116, 6.1319},
	"Luxembourg, Luxembourg": {49.6116, 6.1319},
	"Budapest, Hungary": {47.4979, 19.0402},
	"Budapest": {47.4979, 19.0402},
	// Asia-Pacific
	"Singapore, Singapore": {1.3521, 103.8198},
	"Singapore": {1.3521, 103.8198},
	"APAC": {1.3521, 103.8198}, // Singapore (representative center of APAC region)
	"Asia-Pacific": {1.3521, 103.8198},
	"Tokyo, Japan": {35.6762, 139.6503},
	"Tokyo": {35.6762, 139.6503},
	"Seoul, Korea": {37.5665, 126.978},
	"Seoul, South Korea": {37.5665, 126.978},
	"Seoul": {37.5665, 126.978},
	"Hong Kong, Hong Kong": {22.3193, 114.1694},
	"Hong Kong": {22.3193, 114.1694},
	"Shanghai, China": {31.2304, 121.4737},
	"Shanghai": {31.2304, 121.4737},
	"Beijing, China": {39.9042, 116.4074},
	"Beijing": {39.9042, 116.4074},
	"Bangalore, India": {12.9716, 77.5946},
	"Bangalore": {12.9716, 77.5946},
	"Mumbai, India": {19.076, 72.8777},
	"Mumbai": {19.076, 72.8777},
	"Delhi, India": {28.7041, 77.1025},
	"Delhi": {28.7041, 77.1025},
	"Sydney, Australia": {-33.8688, 151.2093},
	"Sydney": {-33.8688, 151.2093},
	"Melbourne, Australia": {-37.8136, 144.9631},
	"Melbourne": {-37.8136, 144.9631},
	"Auckland, New Zealand": {-36.8485, 174.7633},
	"Auckland": {-36.8485, 174.7633},
	// Latin America
	"São Paulo, Brazil": {-23.5505, -46.6333},
	"São Paulo": {-23.5505, -46.6333},
	"Mexico City, Mexico": {19.4326, -99.1332},
	"Mexico City": {19.4326, -99.1332},
	"Buenos Aires, Argentina": {-34.6037, -58.3816},
	"Buenos Aires": {-34.6037, -58.3816},
	"Argentina": {-34.6037, -58.3816},
	"Bogotá, Colombia": {4.711, -74.0721},
	"Bogotá": {4.711, -74.0721},
	"Santiago, Chile": {-33.4489, -70.6693},
	"Santiago": {-33.4489, -70.6693},
	"Casablanca, Morocco": {33.5731, -7.5898},
	"Casablanca": {33.5731, -7.5898},
	// Middle East
	"Dubai, United Arab Emirates": {25.2048, 55.2708},
	"Dubai": {25.2048, 55.2708},
	"UAE": {24.4539, 54.3773}, // Abu Dhabi (capital, center of UAE)
	"United Arab Emirates": {24.4539, 54.3773},
	"Doha, Qatar": {25.2854, 51.5310},
	"Doha": {25.2854, 51.5310},
	"Tel Aviv, Israel": {32.0853, 34.7818},
	"Tel Aviv": {32.0853, 34.7818},
	// Africa
	"Cape Town, South Africa": {-33.9249, 18.4241},
	"Cape Town": {-33.9249, 18.4241},
	"Johannesburg, South Africa": {-26.2041, 28.0473},
	"Johannesburg": {-26.2041, 28.0473},
	"Lagos, Nigeria": {6.5244, 3.3792},
	"Lagos": {6.5244, 3.3792},
	"Cairo, Egypt": {30.0444, 31.2357},
	"Cairo": {30.0444, 31.2357},
	// Additional cities for office locations
	"Pune, India": {18.5204, 73.8567},
	"Pune": {18.5204, 73.8567},
	"Bengaluru, India": {12.9716, 77.5946},
	"Bengaluru": {12.9716, 77.5946},
	"Bengaluru, Karnataka, India": {12.9716, 77.5946},
	"Bengaluru, Karnataka": {12.9716, 77.5946},
	"Hyderabad, India": {17.3850, 78.4867},
	"Hyderabad": {17.3850, 78.4867},
	"Chennai, India": {13.0827, 80.2707},
	"Chennai": {13.0827, 80.2707},
	"Taipei, Taiwan": {25.0330, 121.5654},
	"Taipei": {25.0330, 121.5654},
	"Bangkok, Thailand": {13.7563, 100.5018},
	"Bangkok": {13.7563, 100.5018},
	"Guangzhou, China": {23.1291, 113.2644},
	"Guangzhou": {23.1291, 113.2644},
	"Shenzhen, China": {22.5431, 114.0579},
	"Shenzhen": {22.5431, 114.0579},
	"Oakland, California, United States": {37.8044, -122.2711},
	"Oakland, CA, United States": {37.8044, -122.2711},
	"Oakland": {37.8044, -122.2711},
	"Santa Clara, California, United States": {37.3541, -121.9552},
	"Santa Clara, CA, United States": {37.3541, -121.9552},
	"Santa Clara": {37.3541, -121.9552},
	"Redwood City, California, United States": {37.4852, -122.2364},
	"Redwood City, CA, United States": {37.4852, -122.2364},
	"Redwood City": {37.4852, -122.2364},
	"Sunnyvale, California, United States": {37.3688, -122.0363},
	"Sunnyvale, CA, United States": {37.3688, -122.0363},
	"Sunnyvale, CA - US": {37.3688, -122.0363},
	"Sunnyvale, CA": {37.3688, -122.0363},
	"Sunnyvale": {37.3688, -122.0363},
	"San Jose, California, United States": {37.3382, -121.8863},
	"San Jose, CA, United States": {37.3382, -121.8863},
	"San Jose, CA - US": {37.3382, -121.8863},
	"San Jose, CA": {37.3382, -121.8863},
	"San Jose": {37.3382, -121.8863},
	"San Jose Office": {37.3382, -121.8863},
	"Foster City, California, United States": {37.5585, -122.2711},
	"Foster City, CA, United States": {37.5585, -122.2711},
	"Foster City, CA - US": {37.5585, -122.2711},
	"Foster City, CA": {37.5585, -122.2711},
	"Foster City": {37.5585, -122.2711},
	"Tulsa, Oklahoma, United States": {36.1540, -95.9928},
	"Tulsa, OK, United States": {36.1540, -95.9928},
	"Tulsa, OK - US": {36.1540, -95.9928},
	"Tulsa, OK": {36.1540, -95.9928},
	"Tulsa": {36.1540, -95.9928},
	"Abilene, Texas, United States": {32.4487, -99.7331},
	"Abilene, TX, United States": {32.4487, -99.7331},
	"Abilene, TX - US": {32.4487, -99.7331},
	"Abilene, TX": {32.4487, -99.7331},
	"Abilene": {32.4487, -99.7331},
	"Cheyenne, Wyoming, United States": {41.1400, -104.8197},
	"Cheyenne, WY, United States": {41.1400, -104.8197},
	"Cheyenne, WY - US": {41.1400, -104.8197},
	"Cheyenne, WY": {41.1400, -104.8197},
	"Cheyenne": {41.1400, -104.8197},
	"Arvada, Colorado, United States": {39.8028, -105.0875},
	"Arvada, CO, United States": {39.8028, -105.0875},
	"Arvada, CO - US": {39.8028, -105.0875},
	"Arvada, CO": {39.8028, -105.0875},
	"Arvada": {39.8028, -105.0875},
	"Ponchatoula, Louisiana, United States": {30.4391, -90.4415},
	"Ponchatoula, LA, United States": {30.4391, -90.4415},
	"Ponchatoula, LA - US": {30.4391, -90.4415},
	"Ponchatoula, LA": {30.4391, -90.4415},
	"Ponchatoula": {30.4391, -90.4415},
	"Amarillo, Texas, United States": {35.2220, -101.8313},
	"Amarillo, TX, United States": {35.2220, -101.8313},
	"Amarillo, TX - US": {35.2220, -101.8313},
	"Amarillo, TX": {35.2220, -101.8313},
	"Amarillo": {35.2220, -101.8313},
	"Springfield, Ohio, United States": {39.9242, -83.8088},
	"Springfield, OH, United States": {39.9242, -83.8088},
	"Springfield, OH - US": {39.9242, -83.8088},
	"Springfield, OH": {39.9242, -83.8088},
	"Bellevue, Washington, United States": {47.6101, -122.2015},
	"Bellevue, WA, United States": {47.6101, -122.2015},
	"Bellevue, WA - US": {47.6101, -122.2015},
	"Bellevue, WA": {47.6101, -122.2015},
	"Bellevue": {47.6101, -122.2015},
	"Quincy, Washington, United States": {47.2343, -119.8526},
	"Quincy, WA, United States": {47.2343, -119.8526},
	"Quincy, WA - US": {47.2343, -119.8526},
	"Quincy, WA": {47.2343, -119.8526},
	"Quincy, WA - Data Center": {47.2343, -119.8526},
	"Quincy": {47.2343, -119.8526},
	"Bluffdale, Utah, United States": {40.4847, -111.9388},
	"Bluffdale, UT, United States": {40.4847, -111.9388},
	"Bluffdale, UT - US": {40.4847, -111.9388},
	"Bluffdale, UT": {40.4847, -111.9388},
	"Bluffdale, UT - Data Center": {40.4847, -111.9388},
	"Bluffdale": {40.4847, -111.9388},
	"Ashburn, Virginia, United States": {39.0438, -77.4874},
	"Ashburn, VA, United States": {39.0438, -77.4874},
	"Ashburn, VA - US": {39.0438, -77.4874},
	"Ashburn, VA": {39.0438, -77.4874},
	"Ashburn, VA - Data Center": {39.0438, -77.4874},
	"Ashburn": {39.0438, -77.4874},
	"Elk Grove Village, Illinois, United States": {42.0039, -87.9703},
	"Elk Grove Village, IL, United States": {42.0039, -87.9703},
	"Elk Grove Village, IL - US": {42.0039, -87.9703},
	"Elk Grove Village, IL": {42.0039, -87.9703},
	"Elk Grove Village, IL - Data Center": {42.0039, -87.9703},
	"Elk Grove Village": {42.0039, -87.9703},
	"Kansas City, Missouri, United States": {39.0997, -94.5786},
	"Kansas City, MO, United States": {39.0997, -94.5786},
	"Kansas City, MO - US": {39.0997, -94.5786},
	"Kansas City, MO": {39.0997, -94.5786},
	"Kansas City, MO - Data Center": {39.0997, -94.5786},
	"Kansas City": {39.0997, -94.5786},
	"Bristol, England, United Kingdom": {51.4545, -2.5879},
	"Bristol": {51.4545, -2.5879},
	"Tampa, Florida, United States": {27.9506, -82.4572},
	"Tampa, FL, United States": {27.9506, -82.4572},
	"Tampa": {27.9506, -82.4572},
	"Manila, Philippines": {14.5995, 120.9842},
	"Manila": {14.5995, 120.9842},
	"Kyiv, Ukraine": {50.4501, 30.5234},
	"Kyiv": {50.4501, 30.5234},
	"Kiev, Ukraine": {50.4501, 30.5234},
	"Kiev": {50.4501, 30.5234},
	"Belgrade, Serbia": {44.7866, 20.4489},
	"Belgrade": {44.7866, 20.4489},
	"Riyadh, Saudi Arabia": {24.7136, 46.6753},
	"Riyadh": {24.7136, 46.6753},
	// Iceland
	"Reykjanesbaer, Iceland": {63.9981, -22.5618},
	"Reykjanesbaer, IS": {63.9981, -22.5618},
	"Reykjanesbaer - IS": {63.9981, -22.5618},
	"Reykjanesbaer": {63.9981, -22.5618},
	"Reykjanesbær, Iceland": {63.9981, -22.5618},
	"Reykjanesbær, IS": {63.9981, -22.5618},
	"Reykjanesbær - IS": {63.9981, -22.5618},
	"Reykjanesbær": {63.9981, -22.5618},
	"Sao Paulo, Brazil": {-23.5505, -46.6333},
	"Sao Paulo": {-23.5505, -46.6333},
	// Special/Regional locations (handles remote and regional locations)
	"Remote": {39.8283, -98.5795}, // Geographic center of US (for remote jobs)
	"Remote - US": {39.8283, -98.5795}, // Geographic center of US
	"USA": {39.8283, -98.5795}, // Geographic center of US
	"USA | Relocate": {39.8283, -98.5795}, // Geographic center of US
	"United States": {39.8283, -98.5795},
	"East Coast": {40.7128, -74.006}, // New York City (representative of East Coast)
	"Bay Area or Remote": {37.7749, -122.4194}, // San Francisco (Bay Area)
	"Bay Area": {37.7749, -122.4194}, // San Francisco (Bay Area)
	"Europe": {50.8503, 4.3517}, // Brussels (central point of Europe)
	"São Paolo": {-23.5505, -46.6333}, // São Paulo (fix typo variant)
	"São Paolo, Brazil": {-23.5505, -46.6333}, // São Paulo (fix typo variant)
	"India - Remote": {28.7041, 77.1025}, // Delhi (center of India)
	"Remote - India": {28.7041, 77.1025}, // Delhi (center of India)
	"EMEA": {51.5074, -0.1278}, // London (representative center of EMEA region)
	"LATAM": {-23.5505, -46.6333}, // São Paulo (representative center of LATAM region)
}
