// SPDX-License-Identifier: EPL-2.0

package saturator

// Fit tables for DiodeClipperModel, indexed [fwd-1][bwd-1], each entry
// holding {a, b, si, so}. These constants were fit against the diode
// clipper circuit equation for combinations of up to 5 diodes in series
// each way; downstream snapshots depend on them to 5 significant
// digits.

var siliconFit = [5][5][4]float64{
	{
		{14.013538783148167, 14.013538783002625, 9.838916458010646, 0.05074333630270928},
		{21.871748015161707, 9.182532240914016, 6.890252004666455, 0.07133160117027257},
		{27.693280114911275, 7.050762765047438, 5.608233617849939, 0.08718106563980055},
		{33.05651848106969, 5.951968392121445, 5.023914218206766, 0.09840304732958556},
		{51.12409002822087, 7.8003913971037075, 6.122022474813163, 0.08074110462333906},
	},
	{
		{9.182531655316685, 21.87174680941982, 6.890251666047109, 0.07133160469274555},
		{13.89883538213846, 13.898835382148588, 4.626654245793477, 0.10628426546665204},
		{15.688724237580493, 9.534083123281304, 3.4044199978910887, 0.14584970841530884},
		{20.207387197366668, 8.79257073406701, 3.179217655773826, 0.15593734904268552},
		{28.031927112133676, 9.718934071656136, 3.442900410418956, 0.1436485121303713},
	},
	{
		{7.050764727600349, 27.693286281387294, 5.608234736362655, 0.08718104778576853},
		{9.534082343136829, 15.688723052859338, 3.4044197732928616, 0.14584971824082685},
		{11.587310022245902, 11.58731002231186, 2.614009632051883, 0.19058071488150277},
		{14.13075319100304, 10.017533709691163, 2.296602223426621, 0.21637254869143377},
		{17.03033061419644, 9.372243751551357, 2.1657426584828094, 0.2291822087004832},
	},
	{
		{5.951966742158502, 33.05651159454797, 5.023913234557704, 0.09840306669144883},
		{8.792569843968032, 20.20738538786123, 3.1792173949079627, 0.15593736194479207},
		{10.017533796475519, 14.130753307308828, 2.296602240295518, 0.2163725470818328},
		{11.041181755308786, 11.041181755348719, 1.838119504765217, 0.27022723677304133},
		{11.223240551951672, 8.609635416761739, 1.4800838613669387, 0.33640845725537083},
	},
	{
		{7.800388576323131, 51.12407559566858, 6.122020811641261, 0.08074112661301132},
		{9.718935117732514, 28.031929752363737, 3.4429007169046835, 0.1436484993003876},
		{9.372245058124795, 17.030332812445042, 2.1657429124687315, 0.22918218140592617},
		{8.609635267942823, 11.22324036552669, 1.4800838395934892, 0.33640846230428967},
		{8.339132991537618, 8.339132991523964, 1.1325230220918208, 0.440338545923957},
	},
}

var germaniumFit = [5][5][4]float64{
	{
		{16.377243363175054, 16.37724336318019, 8.54021415704938, 0.057370187480517164},
		{25.885042335041874, 11.253874553827654, 6.281682965857368, 0.07844744876947145},
		{34.487810131698026, 9.412993465541485, 5.468058945021779, 0.090540745529638},
		{48.10205558502969, 9.841653924324676, 5.683172785917438, 0.08734936732972111},
		{74.91010555238323, 13.006634342954875, 7.156335421839414, 0.0695469593703475},
	},
	{
		{11.253874507514725, 25.8850422416139, 6.281682945580695, 0.07844744902868878},
		{14.579485959692967, 14.579485959584705, 3.7836434149533478, 0.131186663201383},
		{19.505471519263676, 12.1251424262162, 3.218977637096419, 0.1540919429113331},
		{25.390598549056296, 11.515340893545972, 3.084987878362374, 0.16106433598674907},
		{35.57696932591939, 13.102996075964564, 3.4572621702410475, 0.14396799707333885},
	},
	{
		{9.412993807209658, 34.48781118871304, 5.468059101273827, 0.09054074291711343},
		{12.125142754843933, 19.50547201767495, 3.218977712195031, 0.15409193929365167},
		{12.580061365916833, 12.58006136574436, 2.172533025937179, 0.22922482434392638},
		{15.610044920725795, 11.19900028184279, 1.9557246559358357, 0.25438530992348235},
		{20.766038390005722, 11.828743968114324, 2.055494391522101, 0.24222422759566611},
	},
	{
		{9.841650386184702, 48.10204124271992, 5.6831711547599735, 0.08734939245309749},
		{11.515339727304719, 25.39059620900811, 3.084987610491443, 0.16106435003667227},
		{11.199002268491, 15.610047567107346, 1.955724963317157, 0.25438526976983744},
		{9.789367161124993, 9.78936716107417, 1.2783124100453043, 0.39031047870114366},
		{11.199637242408283, 8.688306318271986, 1.1466396427036314, 0.43504915836012503},
	},
	{
		{13.006628700955355, 74.9100780229614, 7.156332842362052, 0.06954698445157906},
		{13.102996274684337, 35.576969804103044, 3.4572622156825514, 0.14396799518071915},
		{11.828742623775012, 20.76603619590081, 2.0554941835424905, 0.24222425216829363},
		{8.688308178030308, 11.199639530649264, 1.1466398647883216, 0.43504907393569836},
		{5.8988195665816905, 5.898819566582509, 0.6308047004920511, 0.7918563457384652},
	},
}

var ledFit = [5][5][4]float64{
	{
		{4.435713979386322e-5, 4.435638644124075e-5, 0.3001402495706703, 1.676015028548096},
		{1.5753358037082148, 0.3863703462043009, 0.49878617525719776, 1.0639637950068614},
		{2.1546856628863655, 0.06928481836415978, 0.3329889894271551, 1.5186174762828244},
		{3.0281049178820543, 0.0032464741823931206, 0.2970523601172462, 1.6829046548375952},
		{3.5144367124396108, 0.002915891412681926, 0.2970311389293134, 1.683306819551628},
	},
	{
		{0.3863705958666232, 1.5753362340604948, 0.498786238329306, 1.0639636273268471},
		{16.424299661398564, 16.42429966161495, 3.010532359651235, 0.1658253668791719},
		{21.52060017050886, 13.640116199834821, 2.543487442965256, 0.19610839508452663},
		{33.96161938090595, 16.451011829388115, 3.013879924129542, 0.16559017534935822},
		{35.83028468657796, 16.305708297311323, 2.995703016266972, 0.1668774538192173},
	},
	{
		{0.0692847926221858, 2.154685589394149, 0.3329889807641022, 1.5186175172102436},
		{13.640114653384448, 21.52059785652759, 2.5434871856274714, 0.19610841501030898},
		{12.912141619267407, 12.912141619548203, 1.5764737878319843, 0.31661052277964713},
		{17.50010626618652, 12.926694115470912, 1.5778897299024395, 0.3162920770711803},
		{18.774139848715233, 12.74654340777339, 1.560378164399095, 0.32027925239938787},
	},
	{
		{0.0032464910429759364, 3.028104995079552, 0.29705236725575596, 1.6829046145020117},
		{16.45101245250614, 33.96162057167496, 3.013880027502115, 0.16559016966278778},
		{12.92669460738176, 17.500106902312837, 1.5778897855307121, 0.31629206590798103},
		{3.536026014379721, 3.53602601437973, 0.343521712041019, 1.4550933490658728},
		{4.0413270488286415, 3.499058879138013, 0.3403145160759295, 1.469030821133474},
	},
	{
		{0.0029159084611507, 3.5144367966222614, 0.2970311448110932, 1.6833067859022843},
		{16.30570866638424, 35.830285428404906, 2.995703077696013, 0.1668774503943544},
		{12.746338329375735, 22.09517446273478, 1.5603548987543252, 0.3202840316289733},
		{3.4990583028197717, 4.0413264147144705, 0.34031446336973104, 1.469031048722433},
		{1.8259169483116064, 1.8259169483116053, 0.15511805295671305, 3.2232909023681384},
	},
}

func modelFromFit(table *[5][5][4]float64, fwd, bwd int) DiodeClipperModel {
	if fwd < 1 || fwd > 5 || bwd < 1 || bwd > 5 {
		panic("saturator: diode counts in clipper model must be within 1..5")
	}
	e := table[fwd-1][bwd-1]
	return DiodeClipperModel{A: e[0], B: e[1], Si: e[2], So: e[3]}
}

// NewSiliconDiodeClipperModel returns the fitted analytical model for a
// silicon clipper with fwd/bwd diodes in each direction (1..5 each).
func NewSiliconDiodeClipperModel(fwd, bwd int) DiodeClipperModel {
	return modelFromFit(&siliconFit, fwd, bwd)
}

// NewGermaniumDiodeClipperModel returns the fitted analytical model for
// a germanium clipper with fwd/bwd diodes in each direction (1..5
// each).
func NewGermaniumDiodeClipperModel(fwd, bwd int) DiodeClipperModel {
	return modelFromFit(&germaniumFit, fwd, bwd)
}

// NewLEDDiodeClipperModel returns the fitted analytical model for an
// LED clipper with fwd/bwd diodes in each direction (1..5 each).
func NewLEDDiodeClipperModel(fwd, bwd int) DiodeClipperModel {
	return modelFromFit(&ledFit, fwd, bwd)
}
