package narrative

// Cost-benefit pools, split by the product's CPC tier within the batch.
var costBenefitHighCPC = []string{
	"{name} is a high-CPC product ({cpcs}), best suited to experienced affiliates who know how to handle competitive traffic.",
	"{name} carries an elevated CPC ({cpcs}), making it most profitable for affiliates with deeper expertise and a robust budget.",
	"At a CPC of {cpcs}, {name} demands strategic skill but offers meaningful returns for experienced affiliates.",
	"Affiliates with the experience and budget to manage a high CPC ({cpcs}) are positioned to get the most out of {name}.",
	"{name} has a high CPC ({cpcs}), an advantage for affiliates looking to work lucrative niches.",
	"For affiliates with real expertise, {name}, with its high CPC ({cpcs}), can be a profitable pick.",
	"If an affiliate is comfortable with competitive traffic, {name}, at a CPC of {cpcs}, is highly recommendable.",
	"{name} fits experienced affiliates who can absorb higher costs ({cpcs}).",
	"With an elevated CPC ({cpcs}), {name} rewards those who run well-tuned campaigns.",
	"Experienced affiliates can unlock the potential of {name} even at its high CPC ({cpcs}).",
}

var costBenefitLowCPC = []string{
	"{name}, with its low CPC ({cpcs}), is perfect for beginners or affiliates on a limited budget.",
	"With an accessible CPC ({cpcs}), {name} makes market entry easy for new affiliates.",
	"{name} is an economical choice ({cpcs}), ideal for keeping initial costs down.",
	"For affiliates chasing low costs ({cpcs}), {name} is the most accessible and safest option.",
	"New affiliates can start with confidence using {name}, which keeps CPC low ({cpcs}).",
	"With an affordable CPC ({cpcs}), {name} suits anyone who wants to learn without a large outlay.",
	"{name} offers an accessible entry point ({cpcs}), great for affiliates new to the market.",
	"For anyone prioritizing early cost-benefit, {name}, at a CPC of {cpcs}, is an excellent choice.",
	"{name} combines affordability ({cpcs}) with easy conversion, perfect for starters.",
	"With a reduced CPC ({cpcs}), {name} gives new affiliates both safety and accessibility.",
}

var costBenefitComparative = []string{
	"Both products, {name_1} and {name_2}, offer distinct advantages depending on the affiliate's profile.",
	"While {name_1} demands more expertise at a CPC of {cpcs_1}, {name_2}, at {cpcs_2}, is more accessible.",
	"{name_1} and {name_2} serve different audiences: one for veterans, one for beginners, balancing the choice.",
	"Affiliates can weigh {name_1}, with its elevated CPC of {cpcs_1}, against {name_2} and its lower costs ({cpcs_2}).",
	"With distinct CPCs, {cpcs_1} for {name_1} and {cpcs_2} for {name_2}, each brings its own benefits.",
	"{name_1} targets aggressive campaigns, while {name_2} fits leaner strategies.",
	"Both products can be worked strategically: {name_1} for high returns, {name_2} for lower risk.",
	"For versatile affiliates, {name_1} and {name_2} are complementary, spanning high- and low-competition niches.",
	"With its elevated CPC ({cpcs_1}), {name_1} brings challenge and profit; at {cpcs_2}, {name_2} is the safer bet.",
	"Choosing between {name_1} and {name_2} comes down to experience level and the budget available for campaigns.",
}

// Total-score pools for the best and worst ranked products.
var totalScoreHigh = []string{
	"{name} leads the field with a total score of {total_score}, reflecting its edge across multiple metrics.",
	"{name}, scoring {total_score}, stands out as an advantageous pick for experienced affiliates.",
	"{name} posts {total_score} points, outpacing its competition and proving an excellent option.",
	"At {total_score} points, {name} confirms its potential for well-planned campaigns.",
	"{name} leads with a score of {total_score}, showing strong efficiency and predictable results.",
	"The total score of {name} ({total_score}) underlines its quality as a competitive product.",
	"{name} exceeds expectations, reaching {total_score} points and standing out in the market.",
	"{name}, at {total_score} points, suits affiliates who prioritize well-rated metrics.",
	"For anyone holding to a high standard, {name}, at {total_score} points, is the right call.",
	"{name} earns {total_score} points, leading on the evaluation criteria that matter.",
}

var totalScoreLow = []string{
	"{name}, scoring {total_score}, pairs cost and performance in an appealing way.",
	"At {total_score} points, {name} becomes an interesting option for balancing metrics.",
	"{name} scores {total_score}, suiting affiliates who value accessibility and performance.",
	"A total score of {total_score} makes {name} a balanced choice across several strategies.",
	"New affiliates can rely on {name}, at {total_score} points, as a consistent option.",
	"With {total_score} points, {name} fits anyone chasing solid metrics at a reduced cost.",
	"{name}, at {total_score} points, balances accessibility with easy conversion.",
	"Scoring {total_score}, {name} proves a safe and efficient market option.",
	"{name}, reaching {total_score} points, can be a sound pick for early strategies.",
	"With a total score of {total_score}, {name} offers consistency for new affiliates.",
}

// Conclusion pools, chosen by the product's CPC tier.
var conclusionHighCPC = []string{
	"Recommended pick: {name}, suited to experienced affiliates thanks to its high CPC ({cpcs}) and meaningful return potential.",
	"{name} is the strongest option for seasoned affiliates, offering a high CPC ({cpcs}) and wide profit margins.",
	"{name} is recommended for those who run optimized campaigns, making the most of its elevated CPC ({cpcs}).",
	"For affiliates who can convert competitive traffic, {name} is the pick, given its high CPC ({cpcs}) and attractive returns.",
	"Experienced affiliates should lean toward {name}, whose profitability shows in its CPC of {cpcs}.",
	"With an elevated CPC ({cpcs}), {name} stands out as the preferred choice for maximizing profit in competitive campaigns.",
	"{name} is recommended for affiliates with market expertise who want to work a high CPC ({cpcs}).",
	"{name} fits affiliates with a robust budget who can capitalize on its CPC of {cpcs}.",
	"Affiliates willing to invest in well-tuned campaigns should prioritize {name} and its elevated CPC ({cpcs}).",
	"Of the products reviewed, {name} is the best fit for experienced affiliates, given its CPC of {cpcs} and conversion upside.",
}

var conclusionLowCPC = []string{
	"Recommended pick: {name}, ideal for beginners or anyone minimizing costs, with an accessible CPC ({cpcs}).",
	"For anyone just entering the market, {name} is the best choice, offering a low CPC ({cpcs}) and an easy start.",
	"{name} is recommended for affiliates on a limited budget, given its CPC of {cpcs} and overall accessibility.",
	"Affiliates who prefer economical campaigns should go with {name} and its reduced CPC ({cpcs}).",
	"If the goal is minimizing up-front costs, work with {name} and take advantage of its accessible CPC ({cpcs}).",
	"With a low CPC ({cpcs}), {name} suits affiliates who prioritize lower risk and tighter financial control.",
	"{name} keeps entry costs down ({cpcs}), making it the practical pick for a first campaign.",
	"For cautious budgets, {name} and its CPC of {cpcs} offer the smoothest start.",
	"{name} pairs a modest CPC ({cpcs}) with steady conversion, a safe early-strategy pick.",
	"Starting out is simpler with {name}, whose CPC ({cpcs}) leaves room to learn and adjust.",
}

var conclusionMidCPC = []string{
	"Recommended pick: {name}, with a mid-range CPC ({cpcs}), a balanced option for managing both costs and profits.",
	"For a middle ground between investment and return, {name}, at a mid-range CPC ({cpcs}), is a smart choice.",
	"{name}, with its mid-range CPC ({cpcs}), allows tighter campaign control, ideal for intermediate affiliates.",
	"With a moderate CPC ({cpcs}), {name} pairs accessibility with consistent return potential.",
	"Affiliates who want lower risk without giving up returns should consider {name} and its mid-range CPC ({cpcs}).",
	"{name} offers flexibility for strategic campaigns thanks to its mid-range CPC ({cpcs}).",
	"With a mid-range CPC ({cpcs}), {name} is a versatile pick for affiliates seeking financial balance.",
	"For mid-scale campaigns, {name}, at a moderate CPC ({cpcs}), delivers stability and solid return opportunities.",
	"{name} is a sound choice for campaigns with a moderate CPC ({cpcs}) and steady margins.",
	"With its mid-range CPC ({cpcs}), {name} serves affiliates looking to expand as well as those keeping costs in check.",
}
